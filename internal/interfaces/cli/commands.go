package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/bulk"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/logger"
)

func unknownEntity(name string, known []string) error {
	return shared.NewDomainError("NOT_FOUND",
		fmt.Sprintf("unknown collection %q, expected one of: %s", name, strings.Join(known, ", ")))
}

func newConsoleCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:         "console <collection>",
		Aliases:     []string{"ui"},
		Short:       "Browse and edit a collection interactively",
		Long:        "Open the table view for a collection. Key bindings are listed below the table.",
		Args:        cobra.ExactArgs(1),
		ValidArgs:   a.entityNames(),
		Annotations: map[string]string{"console": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := a.lookup(args[0])
			if !ok {
				return unknownEntity(args[0], a.entityNames())
			}
			return e.runConsole(cmd.Context(), a)
		},
	}
}

func newImportCommand(a *App) *cobra.Command {
	var (
		file string
		rate float64
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create records from a YAML manifest",
		Long: `Create records from a YAML manifest:

  batches:
    - entity: authors
      rows:
        - name: Jane Austen
          nationality: British

Each row goes through the same form validation as create. Failed rows are
reported and the import continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := bulk.LoadFile(file)
			if err != nil {
				return err
			}

			// Manifests may name a collection by any of its aliases
			for i, b := range f.Batches {
				if e, ok := a.lookup(b.Entity); ok {
					f.Batches[i].Entity = e.name()
				}
			}
			targets := make(map[string]bulk.Target, len(a.entities))
			for _, e := range a.entities {
				if t := e.target(a); t != nil {
					targets[e.name()] = t
				}
			}
			perSecond := a.Config.Import.RatePerSecond
			if cmd.Flags().Changed("rate") {
				perSecond = rate
			}
			im := bulk.NewImporter(targets,
				bulk.WithRate(perSecond, a.Config.Import.Burst),
				bulk.WithLogger(logger.Named(a.Logger, "import")),
				bulk.WithMetrics(a.Metrics),
			)

			report, runErr := im.Run(cmd.Context(), f)
			if report != nil {
				if err := a.printReport(report); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}
			if failed := len(report.Failed()); failed > 0 {
				return shared.NewDomainError("IMPORT_FAILED", fmt.Sprintf("%d of %d rows failed", failed, len(report.Results)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "manifest file")
	cmd.Flags().Float64Var(&rate, "rate", 0, "creates per second, 0 for unlimited (default import.rate_per_second)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newMediaCommand(a *App) *cobra.Command {
	media := &cobra.Command{
		Use:   "media",
		Short: "Upload images and documents to object storage",
	}

	var collection, attachID, field string
	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file and print its public URL",
		Long: `Upload a file to the configured bucket and print its public URL.
With --attach the URL is also stored on a record: list fields such as images
get it appended, other fields are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target entity
			if attachID != "" {
				e, ok := a.lookup(collection)
				if !ok {
					return unknownEntity(collection, a.entityNames())
				}
				target = e
			}

			store, err := a.objectStorage()
			if err != nil {
				return err
			}
			m, err := store.UploadFile(cmd.Context(), collection, args[0])
			if err != nil {
				return err
			}
			a.Logger.Info("Uploaded media", zap.String("key", m.Key), zap.Int64("size", m.Size))

			if target != nil {
				if err := target.attach(cmd.Context(), a, attachID, field, m.URL); err != nil {
					return fmt.Errorf("uploaded %s but could not attach it: %w", m.URL, err)
				}
			}
			if a.jsonOutput() {
				return a.printJSON(m)
			}
			a.printf("%s\n", m.URL)
			return nil
		},
	}
	upload.Flags().StringVar(&collection, "entity", "media", "collection the file belongs to, used as the key prefix")
	upload.Flags().StringVar(&attachID, "attach", "", "record ID to store the URL on")
	upload.Flags().StringVar(&field, "field", "images", "record field that receives the URL")

	media.AddCommand(upload)
	return media
}
