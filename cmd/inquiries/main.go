package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"inquiryapi/internal/config"
	"inquiryapi/internal/database"
	"inquiryapi/internal/domain"
	"inquiryapi/internal/store"
	apperrors "inquiryapi/pkg/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore reads the config and connects to the document store. The caller
// must close the returned cleanup func.
func openStore() (*store.DocumentStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	// Diagnostics go to stderr so stdout stays valid JSON
	logger := zap.NewNop()
	if cfg.App.Debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, fmt.Errorf("initializing logger: %w", err)
		}
	}

	db, err := database.Open(cfg.Database, logger, &store.Document{})
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return store.NewDocumentStore(db, logger), func() { _ = database.Close(db) }, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

var rootCmd = &cobra.Command{
	Use:          "inquiries",
	Short:        "Inspect stored inquiries",
	SilenceUsage: true,
}

var (
	listCollection string
	listLimit      int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the newest documents of a collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listLimit <= 0 {
			return fmt.Errorf("--limit must be greater than 0")
		}

		docs, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		list, err := docs.List(cmd.Context(), listCollection, listLimit)
		if err != nil {
			return fmt.Errorf("listing %s: %w", listCollection, err)
		}
		return printJSON(cmd.OutOrStdout(), list)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		doc, err := docs.Get(cmd.Context(), args[0])
		if err != nil {
			if apperrors.IsNotFound(err) {
				return fmt.Errorf("no document with id %s", args[0])
			}
			return err
		}
		return printJSON(cmd.OutOrStdout(), doc)
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collection names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		names, err := docs.Collections(cmd.Context(), 100)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), names)
	},
}

func init() {
	listCmd.Flags().StringVar(&listCollection, "collection", domain.CollectionInquiry, "collection to list")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of documents")

	rootCmd.AddCommand(listCmd, showCmd, collectionsCmd)
}
