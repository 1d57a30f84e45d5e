package thss

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// wireformat.go is the THSS analogue of the SSS wire format: the same
// "{k}-{i}-{base64}" textual shape, but its own binary schema carrying
// shares_count and the optional metadata tag map (spec §4.6 step 5, §4.8).

var cborEncMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

type thssSharePayload struct {
	ID          uint32           `cbor:"1,keyasint"`
	Threshold   uint32           `cbor:"2,keyasint"`
	SharesCount uint32           `cbor:"3,keyasint"`
	Data        []byte           `cbor:"4,keyasint"`
	Hash        []byte           `cbor:"5,keyasint,omitempty"`
	MetaData    *metaDataPayload `cbor:"6,keyasint,omitempty"`
}

type metaDataPayload struct {
	Tags map[string]string `cbor:"1,keyasint"`
}

func base64NoPad(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

func base64NoPadDecode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(s)
}

// EncodeShareText serializes a Share into its canonical "k-i-base64" text.
// The reserved hash field is never populated, per the reference schema.
func EncodeShareText(s Share) (string, error) {
	payload := thssSharePayload{
		ID:          uint32(s.ID),
		Threshold:   uint32(s.Threshold),
		SharesCount: uint32(s.SharesCount),
		Data:        s.Data,
	}
	if s.Metadata != nil {
		payload.MetaData = &metaDataPayload{Tags: s.Metadata}
	}

	encoded, err := cborEncMode.Marshal(payload)
	if err != nil {
		return "", sigilerr.Wrap(err, "encode thss share payload")
	}

	return fmt.Sprintf("%d-%d-%s", s.Threshold, s.ID, base64NoPad(encoded)), nil
}

// ParseShareText parses the canonical "k-i-base64" THSS share text,
// cross-checking k/i against the decoded payload and enforcing the THSS
// bounds of spec §4.6 step 5: k<1||i<1, and n<1||k>n||i>n.
func ParseShareText(text string) (Share, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Split(trimmed, "-")
	if len(parts) != 3 {
		return Share{}, sigilerr.ErrShareParsingError
	}

	k, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Share{}, sigilerr.ErrShareParsingInvalidShareThreshold
	}
	i, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Share{}, sigilerr.ErrShareParsingInvalidShareID
	}
	if parts[2] == "" {
		return Share{}, sigilerr.ErrShareParsingEmptyShare
	}

	if k < MinThreshold || i < 1 {
		return Share{}, sigilerr.ErrShareParsingInvalidShareThreshold
	}

	raw, err := base64NoPadDecode(parts[2])
	if err != nil {
		return Share{}, sigilerr.Wrap(sigilerr.ErrShareParsingError, "decode base64 payload")
	}

	var payload thssSharePayload
	if err := cbor.Unmarshal(raw, &payload); err != nil {
		return Share{}, sigilerr.Wrap(sigilerr.ErrShareParsingError, "decode thss share payload")
	}

	if uint64(payload.Threshold) != k || uint64(payload.ID) != i {
		return Share{}, sigilerr.ErrShareParsingError
	}

	n := payload.SharesCount
	if n < 1 || payload.Threshold > n || payload.ID > n {
		return Share{}, sigilerr.ErrShareParsingError
	}

	share := Share{
		Threshold:   uint8(payload.Threshold),
		ID:          uint8(payload.ID),
		SharesCount: uint8(n),
		Data:        payload.Data,
	}
	if payload.MetaData != nil {
		share.Metadata = payload.MetaData.Tags
	}
	return share, nil
}
