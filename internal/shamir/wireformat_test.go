package shamir

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// wrapLegacyShare repackages a legacy "k-i-base64(raw shamir_data)" vector
// (no tag-numbered schema, just the raw data bytes) into a Share usable by
// this package's Recover, mirroring the original implementation's own
// regression-test helper that rewraps old fixtures into its current schema.
func wrapLegacyShare(t *testing.T, text string) Share {
	t.Helper()
	parts := strings.SplitN(text, "-", 3)
	require.Len(t, parts, 3)

	k, err := strconv.ParseUint(parts[0], 10, 8)
	require.NoError(t, err)
	i, err := strconv.ParseUint(parts[1], 10, 8)
	require.NoError(t, err)

	data, err := base64.RawStdEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	return Share{Threshold: uint8(k), ID: uint8(i), Data: data}
}

// Scenario A.
func TestRecoverKnownVectorScenarioA(t *testing.T) {
	shares := []Share{
		wrapLegacyShare(t, "2-1-1YAYwmOHqZ69jA"),
		wrapLegacyShare(t, "2-4-F7rAjX3UOa53KA"),
	}

	recovered, err := Recover(shares, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("My secret\n"), recovered)
}

// Scenario B: extra shares beyond the threshold still recover the same secret.
func TestRecoverKnownVectorScenarioB(t *testing.T) {
	shares := []Share{
		wrapLegacyShare(t, "2-1-1YAYwmOHqZ69jA"),
		wrapLegacyShare(t, "2-2-YJZQDGm22Y77Gw"),
		wrapLegacyShare(t, "2-4-F7rAjX3UOa53KA"),
		wrapLegacyShare(t, "2-5-j0P4PHsw4lW+rg"),
	}

	recovered, err := Recover(shares, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("My secret\n"), recovered)
}

// Scenario C: 5-of-7 recovery using only shares 1, 2, 3, 6, and 7.
func TestRecoverKnownVectorScenarioC(t *testing.T) {
	shares := []Share{
		wrapLegacyShare(t, "5-1-DbuicpLQiCf7bVWiAz8eCpQGpdZmYQ7z2j2+g351tWFLOQPTZkXY8BYfwGGGjkOoz1g9x0ScmLFcWk+2tign"),
		wrapLegacyShare(t, "5-2-nShdfkY5+SlfybMyqjHXCZ01bq5N/0Lkf0nQZw5x3bnHIEVfa0RA4YcJ4SjG/UdpgO/gOcyLRkSp2Dwf8bvw"),
		wrapLegacyShare(t, "5-3-qEhJ3IVEdbDkiRoy+jOJ/KuGE9jWyGeOYEcDwPfEV8E9rfD1Bc17BQAbJ51Xd8oexS2M1qMvNgJHZUQZbUgQ"),
		wrapLegacyShare(t, "5-6-yyVPUeaYPPiWK0wIV5OQ/t61V0lSEO+7X++EWeHRlIq3sRBNwUpKNfx/C+Vc9xTzUftrqBKvkWDZQal7nyi2"),
		wrapLegacyShare(t, "5-7-i8iL6bVf272B3qIjp0QqSny6AIm+DkP7oQjkVVLvx9EMhlvd4HJOxPpmtNF/RjA/zz21d7DY/B//saOPpBQa"),
	}

	recovered, err := Recover(shares, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("The immoral cannot be made moral through the use of secret law."), recovered)
}

// Property 3: round-trip textual.
func TestShareTextRoundTrip(t *testing.T) {
	secret := []byte("round trip me")
	shares, err := Split(3, 5, secret, true)
	require.NoError(t, err)

	for _, s := range shares {
		text, err := EncodeShareText(s)
		require.NoError(t, err)

		parsed, err := ParseShareText(text)
		require.NoError(t, err)

		reEncoded, err := EncodeShareText(parsed)
		require.NoError(t, err)
		assert.Equal(t, text, reEncoded)

		reParsed, err := ParseShareText(reEncoded)
		require.NoError(t, err)
		assert.Equal(t, parsed, reParsed)
	}
}

func TestParseShareTextMalformedSeparators(t *testing.T) {
	_, err := ParseShareText("2_1_abc")
	assert.ErrorIs(t, err, sigilerr.ErrShareParsingError)

	var se *sigilerr.SigilError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Suggestion, "malformed separators should carry a did-you-mean suggestion")
}

func TestParseShareTextInvalidThreshold(t *testing.T) {
	_, err := ParseShareText("1-1-YWJj")
	assert.ErrorIs(t, err, sigilerr.ErrShareParsingInvalidShareThreshold)
}

func TestParseShareTextInvalidShareID(t *testing.T) {
	_, err := ParseShareText("2-0-YWJj")
	assert.ErrorIs(t, err, sigilerr.ErrShareParsingInvalidShareID)
}

func TestParseShareTextEmptyShare(t *testing.T) {
	_, err := ParseShareText("2-1-")
	assert.ErrorIs(t, err, sigilerr.ErrShareParsingEmptyShare)
}

func TestParseShareTextCrossCheckMismatch(t *testing.T) {
	share := Share{Threshold: 3, ID: 1, Data: []byte("x")}
	text, err := EncodeShareText(share)
	require.NoError(t, err)

	// Rewrite the declared threshold in the text without touching the
	// encoded payload, so the cross-check in step 4 must fire.
	tampered := strings.Replace(text, "3-1-", "4-1-", 1)

	_, err = ParseShareText(tampered)
	assert.ErrorIs(t, err, sigilerr.ErrShareParsingError)
}
