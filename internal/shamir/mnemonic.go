package shamir

import (
	"github.com/tyler-smith/go-bip39"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// mnemonic.go is a display-only convenience, not part of the canonical wire
// format of spec §4.6/§6: it maps a share's data bytes to a BIP-39 mnemonic
// phrase for operators who would rather write down words than a base64
// blob. Only data up to 32 bytes is supported, since BIP-39 entropy lengths
// top out there; larger shares must use the canonical k-i-base64 text.

var mnemonicEntropyLens = [...]int{16, 20, 24, 28, 32}

// EncodeMnemonic zero-pads data to the smallest valid BIP-39 entropy length
// and returns its mnemonic phrase.
func EncodeMnemonic(data []byte) (string, error) {
	padded, err := padToMnemonicEntropyLen(data)
	if err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(padded)
	if err != nil {
		return "", sigilerr.Wrap(err, "encode share data as mnemonic")
	}
	return mnemonic, nil
}

// DecodeMnemonic recovers dataLen bytes of share data from a mnemonic
// produced by EncodeMnemonic, discarding the zero padding.
func DecodeMnemonic(mnemonic string, dataLen int) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, sigilerr.Wrap(sigilerr.ErrShareParsingError, "decode mnemonic")
	}
	if dataLen > len(entropy) {
		return nil, sigilerr.ErrShareParsingError
	}
	return entropy[:dataLen], nil
}

func padToMnemonicEntropyLen(data []byte) ([]byte, error) {
	for _, l := range mnemonicEntropyLens {
		if len(data) <= l {
			padded := make([]byte, l)
			copy(padded, data)
			return padded, nil
		}
	}
	return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput,
		"share data longer than 32 bytes cannot be mnemonic-encoded; use the canonical k-i-base64 text instead")
}
