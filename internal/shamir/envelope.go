package shamir

import (
	"github.com/fxamacker/cbor/v2"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// envelope.go implements the wrapped-secret layer of spec §4.7: a thin
// version/MIME envelope around the plaintext, SSS-split as opaque bytes.

// EnvelopeVersion enumerates the wrapped-secret schema version. Unknown
// versions on decode are rejected rather than guessed at.
type EnvelopeVersion uint8

// InitialRelease is the only version currently defined.
const InitialRelease EnvelopeVersion = 1

// WrappedSecret is the plaintext wrapped before SSS splitting.
type WrappedSecret struct {
	Version  EnvelopeVersion
	Secret   []byte
	MimeType string
}

type wrappedSecretPayload struct {
	Version  uint8  `cbor:"1,keyasint"`
	Secret   []byte `cbor:"2,keyasint"`
	MimeType string `cbor:"3,keyasint,omitempty"`
}

// EncodeEnvelope serializes a WrappedSecret to the bytes fed to SSS split.
func EncodeEnvelope(w WrappedSecret) ([]byte, error) {
	payload := wrappedSecretPayload{
		Version:  uint8(w.Version),
		Secret:   w.Secret,
		MimeType: w.MimeType,
	}
	encoded, err := cborEncMode.Marshal(payload)
	if err != nil {
		return nil, sigilerr.Wrap(err, "encode wrapped secret envelope")
	}
	return encoded, nil
}

// DecodeEnvelope parses bytes recovered by SSS back into a WrappedSecret,
// rejecting anything but the known InitialRelease version.
func DecodeEnvelope(data []byte) (WrappedSecret, error) {
	var payload wrappedSecretPayload
	if err := cbor.Unmarshal(data, &payload); err != nil {
		return WrappedSecret{}, sigilerr.Wrap(sigilerr.ErrSecretDeserializationError, "decode wrapped secret envelope")
	}
	if EnvelopeVersion(payload.Version) != InitialRelease {
		return WrappedSecret{}, sigilerr.ErrSecretDeserializationError
	}
	return WrappedSecret{
		Version:  EnvelopeVersion(payload.Version),
		Secret:   payload.Secret,
		MimeType: payload.MimeType,
	}, nil
}
