package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/theekrystallee/hedera-mnemonic/config"
	"github.com/theekrystallee/hedera-mnemonic/internal/keystore"
	"github.com/theekrystallee/hedera-mnemonic/internal/storage"
	"github.com/theekrystallee/hedera-mnemonic/pkg/mnemonic"
)

const walletUsage = "Usage: hedera-mnemonic wallet <import|list|show|delete> [flags]"

func cmdWallet(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	if len(args) < 1 {
		fatal(walletUsage)
	}

	switch args[0] {
	case "import":
		cmdWalletImport(args[1:], cfg, legacy)
	case "list":
		cmdWalletList(args[1:], cfg, legacy)
	case "show":
		cmdWalletShow(args[1:], cfg, legacy)
	case "delete":
		cmdWalletDelete(args[1:], cfg, legacy)
	default:
		fatal("Unknown wallet command: %s\n%s", args[0], walletUsage)
	}
}

// openKeystore opens the Badger keystore in the data directory. The caller
// must close the returned database.
func openKeystore(cfg *config.Config, legacy *mnemonic.WordList) (*keystore.Keystore, storage.DB) {
	db, err := storage.Open(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	params := keystore.Params{
		Memory:      cfg.Keystore.Memory,
		Iterations:  cfg.Keystore.Iterations,
		Parallelism: cfg.Keystore.Parallelism,
	}
	ks, err := keystore.New(db, params, legacy)
	if err != nil {
		db.Close()
		fatal("keystore: %v", err)
	}
	return ks, db
}

// nameArg parses flags for a wallet subcommand taking a single name.
func nameArg(fs *flag.FlagSet, args []string, usage string) string {
	fs.Parse(args)
	if fs.NArg() != 1 {
		fatal("Usage: hedera-mnemonic wallet %s", usage)
	}
	return fs.Arg(0)
}

func cmdWalletImport(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("wallet import", flag.ExitOnError)
	phrase := fs.String("phrase", "", "Phrase to import (prompted if empty)")
	name := nameArg(fs, args, "import [--phrase \"word1 word2 ...\"] <name>")

	importPhrase(cfg, legacy, name, readMnemonic(*phrase, legacy))
}

// importPhrase prompts for a password twice and seals m under name.
func importPhrase(cfg *config.Config, legacy *mnemonic.WordList, name string, m *mnemonic.Mnemonic) {
	if res := m.Validate(); !res.OK() {
		fatal("phrase rejected: %s", res.Status)
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}

	ks, db := openKeystore(cfg, legacy)
	defer db.Close()

	entry, err := ks.Import(name, m, password)
	if err != nil {
		fatal("import: %v", err)
	}
	fmt.Printf("Stored %s phrase %q (fingerprint %s)\n", entry.Format, entry.Name, entry.Fingerprint)
}

func cmdWalletList(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("wallet list", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Output JSON")
	fs.Parse(args)

	ks, db := openKeystore(cfg, legacy)
	defer db.Close()

	entries, err := ks.List()
	if err != nil {
		fatal("list: %v", err)
	}
	if *asJSON {
		if entries == nil {
			entries = []keystore.Entry{}
		}
		printJSON(entries)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No stored phrases.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tFINGERPRINT\tCREATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Format, e.Fingerprint, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func cmdWalletShow(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("wallet show", flag.ExitOnError)
	name := nameArg(fs, args, "show <name>")

	m := loadFromKeystore(cfg, legacy, name)
	fmt.Println(m)
}

// loadFromKeystore prompts for the password and decrypts the named phrase.
func loadFromKeystore(cfg *config.Config, legacy *mnemonic.WordList, name string) *mnemonic.Mnemonic {
	ks, db := openKeystore(cfg, legacy)
	defer db.Close()

	if _, err := ks.Info(name); err != nil {
		fatal("%v", err)
	}
	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	m, err := ks.Load(name, password)
	if err != nil {
		fatal("unlock %q: %v", name, err)
	}
	return m
}

func cmdWalletDelete(args []string, cfg *config.Config, legacy *mnemonic.WordList) {
	fs := flag.NewFlagSet("wallet delete", flag.ExitOnError)
	name := nameArg(fs, args, "delete <name>")

	ks, db := openKeystore(cfg, legacy)
	defer db.Close()

	if err := ks.Delete(name); err != nil {
		fatal("delete: %v", err)
	}
	fmt.Printf("Deleted %q\n", name)
}
