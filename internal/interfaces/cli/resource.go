package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/bulk"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/listview"
	domain "github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
	"github.com/UmairZakria/gbs-dashboard2/internal/infrastructure/logger"
	"github.com/UmairZakria/gbs-dashboard2/internal/interfaces/console"
)

// entity is one catalog collection as the command line sees it
type entity interface {
	name() string
	matches(name string) bool
	command(app *App) *cobra.Command
	// target is nil for collections that cannot be created from a form
	target(app *App) bulk.Target
	runConsole(ctx context.Context, app *App) error
	attach(ctx context.Context, app *App, id, field, url string) error
}

// resource binds a collection's service calls, form and table columns
type resource[T domain.Entity] struct {
	use      string
	aliases  []string
	singular string
	plural   string
	source   func(*catalog.Services) listview.Source[T]
	newForm  func(record *T) *form.Form[T]
	columns  []console.Column[T]
	actions  func(app *App, r *resource[T]) []*cobra.Command
}

func (r *resource[T]) name() string { return r.use }

func (r *resource[T]) matches(name string) bool {
	return name == r.use || name == r.singular || slices.Contains(r.aliases, name)
}

func (r *resource[T]) newScreen(app *App, confirm listview.Confirmer, alert listview.Alerter, opts ...listview.Option[T]) *listview.Screen[T] {
	cfg := listview.Config[T]{
		Entity:   r.singular,
		Plural:   r.plural,
		PageSize: app.Config.API.PageSize,
		Source:   r.source(app.Services),
		NewForm:  r.newForm,
	}
	opts = append([]listview.Option[T]{
		listview.WithLogger[T](logger.Named(app.Logger, r.use)),
		listview.WithMetrics[T](app.Metrics),
	}, opts...)
	return listview.NewScreen(cfg, confirm, alert, opts...)
}

func (r *resource[T]) command(app *App) *cobra.Command {
	src := r.source(app.Services)
	cmd := &cobra.Command{
		Use:     r.use,
		Aliases: r.aliases,
		Short:   "Manage " + r.plural,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(r.listCommand(app), r.getCommand(app))
	if src.Stats != nil {
		cmd.AddCommand(r.statsCommand(app))
	}
	if r.newForm != nil {
		cmd.AddCommand(r.fieldsCommand(app))
		if src.Create != nil {
			cmd.AddCommand(r.createCommand(app))
		}
		if src.Update != nil {
			cmd.AddCommand(r.updateCommand(app))
		}
	}
	if src.Delete != nil {
		cmd.AddCommand(r.deleteCommand(app))
	}
	if r.actions != nil {
		cmd.AddCommand(r.actions(app, r)...)
	}
	return cmd
}

func (r *resource[T]) listCommand(app *App) *cobra.Command {
	var (
		q       listview.Query
		filters []string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + r.plural,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parsePairs("filter", filters)
			if err != nil {
				return err
			}
			q.Filters = f

			screen := r.newScreen(app, app, app, listview.WithQuery[T](q))
			if err := screen.Load(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", screen.State().Error, err)
			}
			return r.printPage(app, screen.State())
		},
	}
	cmd.Flags().IntVar(&q.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "page size (default api.page_size)")
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "search term")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as key=value, repeatable")
	return cmd
}

func (r *resource[T]) getCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + r.singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := r.newScreen(app, app, app).Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return r.printRecord(app, rec)
		},
	}
}

func (r *resource[T]) statsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show " + r.singular + " statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := r.source(app.Services).Stats(cmd.Context())
			if err != nil {
				return err
			}
			return app.printStats(stats)
		},
	}
}

func (r *resource[T]) fieldsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields accepted by --set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := r.newForm(nil)
			if app.jsonOutput() {
				type field struct {
					Key     string   `json:"key"`
					Label   string   `json:"label"`
					List    bool     `json:"list,omitempty"`
					Options []string `json:"options,omitempty"`
				}
				out := make([]field, 0, len(f.Fields()))
				for _, fld := range f.Fields() {
					out = append(out, field{Key: fld.Key, Label: fld.Label, List: fld.IsList(), Options: fld.Options})
				}
				return app.printJSON(out)
			}

			rows := make([][]string, 0, len(f.Fields()))
			for _, fld := range f.Fields() {
				kind := "text"
				switch {
				case len(fld.Options) > 0:
					kind = "one of " + strings.Join(fld.Options, "|")
				case fld.IsList():
					kind = "list (comma separated)"
				}
				rows = append(rows, []string{fld.Key, fld.Label, kind, f.Get(fld.Key)})
			}
			app.printTable([]string{"Key", "Label", "Kind", "Default"}, rows)
			return nil
		},
	}
}

func (r *resource[T]) createCommand(app *App) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + r.singular,
		Long: fmt.Sprintf(`Create a %s from --set key=value pairs. The same validation as the
console form applies. The slug is derived from the name unless given.`, r.singular),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := parsePairs("set", sets)
			if err != nil {
				return err
			}
			row := make(bulk.Row, len(values))
			for k, v := range values {
				row[k] = v
			}

			id, err := r.target(app).Create(cmd.Context(), row)
			if err != nil {
				if !errors.Is(err, shared.ErrInvalidInput) {
					app.Metrics.MutationFailed(r.singular, "create")
					app.Logger.Error("Failed to create "+r.singular, zap.String("entity", r.singular), zap.Error(err))
				}
				return err
			}
			app.printf("Created %s %s\n", r.singular, id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as key=value, repeatable")
	return cmd
}

func (r *resource[T]) updateCommand(app *App) *cobra.Command {
	var sets, adds, removes []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a " + r.singular,
		Long: `Update a record. --set replaces a field; --add and --remove edit list
fields one value at a time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parsePairs("set", sets)
			if err != nil {
				return err
			}
			added, err := parsePairList("add", adds)
			if err != nil {
				return err
			}
			removed, err := parsePairList("remove", removes)
			if err != nil {
				return err
			}

			screen := r.newScreen(app, app, app)
			rec, err := screen.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			f := screen.Edit(*rec)
			if err := setFields(f, values); err != nil {
				return err
			}
			for _, kv := range added {
				if err := requireList(f, kv[0]); err != nil {
					return err
				}
				f.Add(kv[0], kv[1])
			}
			for _, kv := range removed {
				if err := requireList(f, kv[0]); err != nil {
					return err
				}
				f.RemoveValue(kv[0], kv[1])
			}

			if err := f.Submit(cmd.Context()); err != nil {
				return err
			}
			app.printf("Updated %s %s\n", r.singular, args[0])
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as key=value, repeatable")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "add a value to a list field as key=value")
	cmd.Flags().StringArrayVar(&removes, "remove", nil, "remove a value from a list field as key=value")
	return cmd
}

func (r *resource[T]) deleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a " + r.singular,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := r.newScreen(app, app, app)
			rec, err := screen.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			confirmed, err := screen.Delete(cmd.Context(), *rec)
			if err != nil {
				return err
			}
			if !confirmed {
				app.printf("Cancelled\n")
				return nil
			}
			app.printf("Deleted %s %s\n", r.singular, args[0])
			return nil
		},
	}
}

func (r *resource[T]) target(app *App) bulk.Target {
	src := r.source(app.Services)
	if r.newForm == nil || src.Create == nil {
		return nil
	}
	return bulk.FormTarget[T]{NewForm: r.newForm, CreateFn: src.Create}
}

func (r *resource[T]) runConsole(ctx context.Context, app *App) error {
	dialogs := console.NewDialogs()
	screen := r.newScreen(app, dialogs, dialogs)
	return console.Run(ctx, console.New(ctx, screen, dialogs, r.columns))
}

// attach stores a media URL in a record's field and saves the record. List
// fields get the URL appended, other fields are replaced.
func (r *resource[T]) attach(ctx context.Context, app *App, id, field, url string) error {
	if r.newForm == nil || r.source(app.Services).Update == nil {
		return shared.NewDomainError("INVALID_STATE", r.plural+" cannot be edited")
	}
	screen := r.newScreen(app, app, app)
	rec, err := screen.Find(ctx, id)
	if err != nil {
		return err
	}

	f := screen.Edit(*rec)
	fld, ok := f.Field(field)
	if !ok {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s has no field %q", r.singular, field))
	}
	if fld.IsList() {
		f.Add(field, url)
	} else if err := f.Set(field, url); err != nil {
		return err
	}
	return f.Submit(ctx)
}

func (r *resource[T]) printPage(app *App, st listview.State[T]) error {
	if app.jsonOutput() {
		return app.printJSON(struct {
			Data       []T          `json:"data"`
			Page       int          `json:"page"`
			TotalPages int          `json:"totalPages"`
			Total      int          `json:"total"`
			Stats      domain.Stats `json:"stats,omitempty"`
		}{st.Items, st.Page, st.TotalPages, st.Total, st.Stats})
	}

	if len(st.Items) == 0 {
		app.printf("No %s found\n", r.plural)
		return nil
	}
	if err := r.printItems(app, st.Items); err != nil {
		return err
	}
	app.printf("Page %d of %d, %d %s\n", st.Page, st.TotalPages, max(st.Total, len(st.Items)), r.plural)
	if len(st.Stats) > 0 {
		keys, values := console.FormatStats(st.Stats)
		app.printf("%s\n", console.RenderStats(console.DefaultStyles(), keys, values))
	}
	return nil
}

func (r *resource[T]) printItems(app *App, items []T) error {
	if app.jsonOutput() {
		return app.printJSON(items)
	}
	if len(items) == 0 {
		app.printf("No %s found\n", r.plural)
		return nil
	}
	headers := make([]string, len(r.columns))
	for i, c := range r.columns {
		headers[i] = c.Title
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		row := make([]string, len(r.columns))
		for j, c := range r.columns {
			row[j] = c.Value(item)
		}
		rows[i] = row
	}
	app.printTable(headers, rows)
	return nil
}

// printRecord shows a record as label/value pairs in form order
func (r *resource[T]) printRecord(app *App, rec *T) error {
	if app.jsonOutput() || r.newForm == nil {
		return app.printJSON(rec)
	}
	f := r.newForm(rec)
	rows := [][]string{{"ID", (*rec).GetID()}}
	for _, fld := range f.Fields() {
		rows = append(rows, []string{fld.Label, f.Get(fld.Key)})
	}
	app.printTable([]string{"Field", "Value"}, rows)
	return nil
}

// setFields applies values in key order so errors are reported consistently
func setFields[T any](f *form.Form[T], values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := f.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

func requireList[T any](f *form.Form[T], key string) error {
	fld, ok := f.Field(key)
	if !ok || !fld.IsList() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%s is not a list field of %s", key, f.Entity()))
	}
	return nil
}

// parsePairList is parsePairs keeping order and repeated keys
func parsePairList(flag string, pairs []string) ([][2]string, error) {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		kv, err := parsePairs(flag, []string{p})
		if err != nil {
			return nil, err
		}
		for k, v := range kv {
			out = append(out, [2]string{k, v})
		}
	}
	return out, nil
}
