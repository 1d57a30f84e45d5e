package cli

import (
	"encoding/json"
	"fmt"
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
	splitThreshold  int
	splitShares     int
	splitSign       bool
	splitScheme     string
	splitSecretFile string
	splitMnemonic   bool
	splitQR         bool
	splitMeta       map[string]string
)

// splitShareJSON is the JSON rendering of one dealt share.
type splitShareJSON struct {
	Text     string `json:"text"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// manifestTable renders a one-line-per-share summary: share index, total
// count, threshold, whether the dealing is signed, and whether the line also
// carries a mnemonic. It is shown above the
// share text in text mode so an operator distributing shares to custodians
// can see at a glance what they're about to hand out.
func manifestTable(shares []splitShareJSON, k, n int, sign bool) *output.Table {
	t := output.NewTable("Share", "Of", "Threshold", "Signed", "Mnemonic")
	for i, s := range shares {
		t.AddRow(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", k),
			fmt.Sprintf("%t", sign),
			fmt.Sprintf("%t", s.Mnemonic != ""),
		)
	}
	return t
}

// splitCmd deals a secret into threshold shares.
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into threshold shares",
	Long: `Split reads a secret and deals it into shares such that any threshold
of them reconstruct it exactly, while fewer reveal nothing.

The secret is read from --secret-file if given, otherwise from a hidden
terminal prompt.

Example:
  secretshare split --threshold 3 --shares 5 --sign
  secretshare split -k 2 -n 3 --secret-file secret.bin --scheme thss`,
	RunE: runSplit,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "k", 0, "shares required to recover (default: config default)")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 0, "total shares to deal (default: config default)")
	splitCmd.Flags().BoolVar(&splitSign, "sign", false, "bind shares with a Merkle-signature proof (sss scheme only)")
	splitCmd.Flags().StringVar(&splitScheme, "scheme", "sss", "sharing scheme: sss or thss")
	splitCmd.Flags().StringVar(&splitSecretFile, "secret-file", "", "read the secret from this file instead of prompting")
	splitCmd.Flags().BoolVar(&splitMnemonic, "mnemonic", false, "also display each share's data as a BIP-39 mnemonic")
	splitCmd.Flags().BoolVar(&splitQR, "qr", false, "also render each share as a terminal QR code")
	splitCmd.Flags().StringToStringVar(&splitMeta, "meta", nil, "metadata tag to attach to every share (thss scheme only, repeatable key=value)")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	cc := GetCmdContext(cmd)

	k := splitThreshold
	if k == 0 {
		k = cc.Cfg.GetDefaultThreshold()
	}
	n := splitShares
	if n == 0 {
		n = cc.Cfg.GetDefaultShares()
	}
	sign := splitSign || (!cmd.Flags().Changed("sign") && cc.Cfg.IsSignByDefault())

	if k < 1 || k > 255 || n < 1 || n > 255 {
		return sigilerr.WithSuggestion(sigilerr.ErrInvalidShareCountMax, "threshold and shares must each be between 1 and 255")
	}

	if cc.Fmt.Format() != output.FormatJSON && !sign && splitScheme != "thss" {
		output.Warn("dealing without --sign: mixed shares from a different dealing will not be detected at recovery")
	}

	rawSecret, err := readSplitSecret()
	if err != nil {
		return err
	}
	secret := secure.New(rawSecret, cc.Cfg.IsMemoryLockEnabled())
	zeroBytes(rawSecret)
	defer secret.Destroy()

	switch splitScheme {
	case "", "sss":
		return splitSSS(cc, k, n, secret.Bytes(), sign)
	case "thss":
		return splitTHSS(cc, k, n, secret.Bytes())
	default:
		return sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "scheme must be \"sss\" or \"thss\"")
	}
}

func readSplitSecret() ([]byte, error) {
	if splitSecretFile != "" {
		// #nosec G304 -- secret file path is operator-supplied CLI input
		data, err := os.ReadFile(splitSecretFile)
		if err != nil {
			return nil, sigilerr.Wrap(err, "read secret file")
		}
		return data, nil
	}
	return promptSecret("Enter secret: ")
}

func splitSSS(cc *CommandContext, k, n int, secret []byte, sign bool) error {
	shares, err := shamir.Split(k, n, secret, sign)
	if err != nil {
		return err
	}

	rendered := make([]splitShareJSON, len(shares))
	for i, s := range shares {
		text, encErr := shamir.EncodeShareText(s)
		if encErr != nil {
			return encErr
		}
		rendered[i].Text = text
		if splitMnemonic {
			if mnemonic, mErr := shamir.EncodeMnemonic(s.Data); mErr == nil {
				rendered[i].Mnemonic = mnemonic
			}
		}
	}
	return renderSplitShares(cc, rendered, k, n, sign)
}

func splitTHSS(cc *CommandContext, k, n int, secret []byte) error {
	shares, err := thss.Split(k, n, secret, splitMeta)
	if err != nil {
		return err
	}

	rendered := make([]splitShareJSON, len(shares))
	for i, s := range shares {
		text, encErr := thss.EncodeShareText(s)
		if encErr != nil {
			return encErr
		}
		rendered[i].Text = text
	}
	return renderSplitShares(cc, rendered, k, n, false)
}

func renderSplitShares(cc *CommandContext, shares []splitShareJSON, k, n int, sign bool) error {
	if cc.Fmt.Format() == output.FormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string][]splitShareJSON{"shares": shares})
	}

	if err := manifestTable(shares, k, n, sign).Render(os.Stdout); err != nil {
		return sigilerr.Wrap(err, "render share manifest")
	}
	outln(os.Stdout)

	for _, s := range shares {
		outln(os.Stdout, s.Text)
		if s.Mnemonic != "" {
			out(os.Stdout, "  mnemonic: %s\n", s.Mnemonic)
		}
		if splitQR {
			_ = output.RenderQR(os.Stdout, s.Text, output.DefaultQRConfig())
		}
	}

	output.Success(fmt.Sprintf("dealt %d shares, %d required to recover", n, k))
	return nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
