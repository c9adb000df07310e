// hedera-mnemonic generates, validates, and stores Hedera recovery phrases
// and derives their account keys.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/theekrystallee/hedera-mnemonic/config"
	"github.com/theekrystallee/hedera-mnemonic/internal/log"
	"github.com/theekrystallee/hedera-mnemonic/pkg/crypto"
	"github.com/theekrystallee/hedera-mnemonic/pkg/mnemonic"
)

const version = "0.1.0"

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		config.PrintUsage(os.Stdout)
		return
	}
	if err != nil {
		fatal("%v", err)
	}
	if flags.Help {
		config.PrintUsage(os.Stdout)
		return
	}
	if flags.Version {
		fmt.Printf("hedera-mnemonic version %s\n", version)
		return
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	legacy, err := loadWordList(cfg.LegacyWordList)
	if err != nil {
		fatal("legacy word list: %v", err)
	}

	if len(flags.Args) == 0 {
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	cmd, cmdArgs := flags.Args[0], flags.Args[1:]
	log.CLI.Debug().Str("command", cmd).Str("datadir", cfg.DataDir).Msg("Dispatch")

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, cfg, legacy)
	case "validate":
		cmdValidate(cmdArgs, legacy)
	case "key":
		cmdKey(cmdArgs, cfg, legacy)
	case "wallet":
		cmdWallet(cmdArgs, cfg, legacy)
	case "help":
		config.PrintUsage(os.Stdout)
	default:
		fatal("Unknown command: %s (see --help)", cmd)
	}
}

// ── Word lists ──────────────────────────────────────────────────────────

// loadWordList reads a newline-separated vocabulary. An empty path yields
// a nil list, which leaves legacy phrases unverifiable.
func loadWordList(path string) (*mnemonic.WordList, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := parseWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	wl, err := mnemonic.NewWordList(words)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.CLI.Debug().Str("path", path).Int("words", wl.Len()).Msg("Loaded legacy word list")
	return wl, nil
}

// parseWordList returns one word per non-blank line, skipping # comments.
func parseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	save := fs.String("save", "", "Seal the new phrase into the keystore under this name")
	fs.Parse(args)

	m, err := mnemonic.Generate(mnemonic.WithLegacyWordList(legacy))
	if err != nil {
		fatal("generate phrase: %v", err)
	}

	fmt.Println("Recovery phrase (write this down!):")
	fmt.Printf("  %s\n", m)

	if *save != "" {
		importPhrase(cfg, legacy, *save, m)
	}
}

// ── validate ────────────────────────────────────────────────────────────

func cmdValidate(args []string, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	phrase := fs.String("phrase", "", "Phrase to check (read from stdin if empty)")
	fs.Parse(args)

	m := readMnemonic(*phrase, legacy)
	res := m.Validate()
	log.CLI.Debug().Str("format", m.Format().String()).Stringer("status", res.Status).Msg("Validated phrase")

	if res.OK() {
		fmt.Printf("ok (%s, %d words)\n", m.Format(), len(m.Words()))
		return
	}
	msg := res.Status.String()
	if len(res.UnknownIndices) > 0 {
		words := m.Words()
		var parts []string
		for _, i := range res.UnknownIndices {
			parts = append(parts, fmt.Sprintf("%d:%q", i+1, words[i]))
		}
		msg += ": " + strings.Join(parts, ", ")
	}
	fatal("%s", msg)
}

// ── key ─────────────────────────────────────────────────────────────────

type keyOutput struct {
	Format      string `json:"format"`
	Derivation  string `json:"derivation"`
	PrivateKey  string `json:"private_key"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
}

func cmdKey(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("key", flag.ExitOnError)
	phrase := fs.String("phrase", "", "Phrase (read from stdin if empty)")
	wallet := fs.String("wallet", "", "Use a phrase stored in the keystore")
	passphrase := fs.String("passphrase", "", "BIP-39 passphrase (standard phrases only)")
	legacyKey := fs.Bool("legacy", false, "Derive the legacy wallet key")
	ed := fs.Int("ed25519", -1, "Derive the Ed25519 child at this index")
	ec := fs.Int("ecdsa", -1, "Derive the ECDSA secp256k1 child at this index")
	asJSON := fs.Bool("json", false, "Output JSON")
	fs.Parse(args)

	var m *mnemonic.Mnemonic
	if *wallet != "" {
		m = loadFromKeystore(cfg, legacy, *wallet)
	} else {
		m = readMnemonic(*phrase, legacy)
	}

	out := keyOutput{Format: m.Format().String()}
	switch {
	case *ec >= 0:
		key, err := m.ToStandardECDSASecp256k1PrivateKey(*passphrase, uint32(*ec))
		if err != nil {
			fatal("derive ecdsa key: %v", err)
		}
		defer key.Zero()
		out.Derivation = fmt.Sprintf("m/44'/3030'/0'/0/%d", *ec)
		out.PrivateKey = hex.EncodeToString(key.Bytes())
		out.PublicKey = hex.EncodeToString(key.PublicKey())
		out.Fingerprint = key.Fingerprint().String()
	default:
		var (
			key *crypto.PrivateKey
			err error
		)
		switch {
		case *ed >= 0:
			key, err = m.ToStandardEd25519PrivateKey(*passphrase, uint32(*ed))
			out.Derivation = fmt.Sprintf("m/44'/3030'/0'/0'/%d'", *ed)
		case *legacyKey || m.IsLegacy():
			key, err = m.ToLegacyPrivateKey()
			out.Derivation = fmt.Sprintf("legacy index %d", m.LegacyDerivationIndex())
		default:
			key, err = m.ToPrivateKey(*passphrase)
			out.Derivation = "m/44'/3030'/0'/0'"
		}
		if err != nil {
			fatal("derive key: %v", err)
		}
		defer key.Zero()
		out.PrivateKey = hex.EncodeToString(key.Bytes())
		out.PublicKey = hex.EncodeToString(key.PublicKey())
		out.Fingerprint = key.Fingerprint().String()
	}

	if *asJSON {
		printJSON(out)
		return
	}
	fmt.Printf("Format:      %s\n", out.Format)
	fmt.Printf("Derivation:  %s\n", out.Derivation)
	fmt.Printf("Private key: %s\n", out.PrivateKey)
	fmt.Printf("Public key:  %s\n", out.PublicKey)
	fmt.Printf("Fingerprint: %s\n", out.Fingerprint)
}

// ── Input helpers ───────────────────────────────────────────────────────

// readMnemonic takes the phrase from the flag, a hidden terminal prompt,
// or piped stdin, in that order.
func readMnemonic(phrase string, legacy *mnemonic.WordList) *mnemonic.Mnemonic {
	if phrase == "" {
		var err error
		phrase, err = readPhrase(os.Stdin)
		if err != nil {
			fatal("read phrase: %v", err)
		}
	}
	if strings.TrimSpace(phrase) == "" {
		fatal("no phrase given")
	}
	return mnemonic.FromString(phrase, mnemonic.WithLegacyWordList(legacy))
}

func readPhrase(stdin *os.File) (string, error) {
	if term.IsTerminal(int(stdin.Fd())) {
		b, err := readPassword("Enter phrase: ")
		return string(b), err
	}
	b, err := io.ReadAll(stdin)
	return string(b), err
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
