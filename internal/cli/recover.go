package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/kjsanger/secretshare/internal/output"
	"github.com/kjsanger/secretshare/internal/secure"
	"github.com/kjsanger/secretshare/internal/shamir"
	"github.com/kjsanger/secretshare/internal/thss"
	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	recoverVerify bool
	recoverScheme string
	recoverOut    string
)

// recoverCmd reconstructs a secret from a set of shares.
var recoverCmd = &cobra.Command{
	Use:   "recover [share-file ...]",
	Short: "Recover a secret from a threshold of shares",
	Long: `Recover reads share wire-format text, one per file argument (or one per
line on stdin if no files are given), and reconstructs the original secret
once a threshold of consistent shares has been supplied.

Example:
  secretshare recover --verify share1.txt share2.txt share3.txt
  cat shares.txt | secretshare recover --scheme thss`,
	RunE: runRecover,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	recoverCmd.Flags().BoolVar(&recoverVerify, "verify", false, "require the Merkle-signature of each share used for recovery to verify (sss scheme only)")
	recoverCmd.Flags().StringVar(&recoverScheme, "scheme", "sss", "sharing scheme: sss or thss")
	recoverCmd.Flags().StringVar(&recoverOut, "out", "", "write the recovered secret to this file instead of stdout")
}

func runRecover(cmd *cobra.Command, args []string) error {
	cc := GetCmdContext(cmd)

	lines, err := readShareLines(args)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return sigilerr.WithSuggestion(sigilerr.ErrMissingShares, "supply share files as arguments or pipe them on stdin")
	}

	if cc.Fmt.Format() != output.FormatJSON && !recoverVerify && (recoverScheme == "" || recoverScheme == "sss") {
		output.Warn("recovering without --verify: a share swapped in from a different dealing will not be detected")
	}

	var rawSecret []byte
	switch recoverScheme {
	case "", "sss":
		rawSecret, err = recoverSSS(lines)
	case "thss":
		rawSecret, err = recoverTHSS(lines)
	default:
		return sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "scheme must be \"sss\" or \"thss\"")
	}
	if err != nil {
		return err
	}
	secret := secure.New(rawSecret, cc.Cfg.IsMemoryLockEnabled())
	zeroBytes(rawSecret)
	defer secret.Destroy()

	return renderRecoveredSecret(cc, secret.Bytes())
}

func recoverSSS(lines []string) ([]byte, error) {
	shares := make([]shamir.Share, len(lines))
	for i, line := range lines {
		s, err := shamir.ParseShareText(line)
		if err != nil {
			return nil, err
		}
		shares[i] = s
	}
	return shamir.Recover(shares, recoverVerify)
}

func recoverTHSS(lines []string) ([]byte, error) {
	shares := make([]thss.Share, len(lines))
	for i, line := range lines {
		s, err := thss.ParseShareText(line)
		if err != nil {
			return nil, err
		}
		shares[i] = s
	}
	return thss.Recover(shares)
}

func renderRecoveredSecret(cc *CommandContext, secret []byte) error {
	if recoverOut != "" {
		if err := os.WriteFile(recoverOut, secret, 0o600); err != nil {
			return sigilerr.Wrap(err, "write recovered secret")
		}
		return output.FormatSuccess(os.Stdout, "secret written to "+recoverOut, cc.Fmt.Format())
	}

	if cc.Fmt.Format() == output.FormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]string{"secret": string(secret)})
	}

	_, err := os.Stdout.Write(secret)
	if err != nil {
		return sigilerr.Wrap(err, "write recovered secret")
	}
	outln(os.Stdout)
	return nil
}
