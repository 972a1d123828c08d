package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/netisu/objview"
	"github.com/netisu/objview/prompt"
	"github.com/netisu/objview/session"
	"github.com/netisu/objview/viewer"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type options struct {
	config  string
	watch   bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "objview",
		Short:         "View and extract objects from Wavefront OBJ files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			s := &session.Session{
				Prompt:  prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				Display: viewer.New(cfg, log),
				Config:  cfg,
				Log:     log,
			}
			return s.Run()
		},
	}
	root.PersistentFlags().StringVar(&opts.config, "config", objview.DefaultConfigPath, "settings file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	root.Flags().BoolVar(&opts.watch, "watch", false, "reload the model when its file changes")
	root.AddCommand(newListCmd(opts), newExportCmd(opts))
	return root
}

func (o *options) setup(cmd *cobra.Command) (objview.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path, err := homedir.Expand(o.config)
	if err != nil {
		return objview.Config{}, nil, err
	}
	cfg, err := objview.LoadConfig(path)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = o.watch
	}
	return cfg, log, nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the objects in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			model, err := load(args[0], log)
			if err != nil {
				return err
			}
			for _, name := range model.Names() {
				obj, _ := model.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "Object: %s (%d faces)\n", name, len(obj.Faces))
			}
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var factor float64
	cmd := &cobra.Command{
		Use:   "export <file> <object> <out>",
		Short: "Write one object and the vertices it uses to a new file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			model, err := load(args[0], log)
			if err != nil {
				return err
			}
			obj, err := model.Find(args[1])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[1])
			}
			warn := func(idx objview.Index) {
				log.Warn("skipping invalid vertex index", "index", int(idx), "object", obj.Name)
			}
			stats, err := exportTo(args[2], obj, model, factor, warn)
			if err != nil {
				return err
			}
			log.Info("exported", "object", obj.Name, "file", args[2],
				"vertices", stats.Vertices, "faces", stats.Faces, "skipped", stats.Skipped)
			return nil
		},
	}
	cmd.Flags().Float64Var(&factor, "simplify", 1, "fraction of triangles to keep")
	return cmd
}

func exportTo(path string, obj *objview.Object, model *objview.Model, factor float64, warn func(objview.Index)) (objview.ExportStats, error) {
	if factor == 1 {
		return objview.SaveOBJ(path, obj, model.Vertices, warn)
	}
	return objview.SaveSimplified(path, obj, model.Vertices, factor, warn)
}

// load reports skipped lines and treats a missing file as an error, unlike
// the interactive session which carries on with an empty catalog.
func load(path string, log *slog.Logger) (*objview.Model, error) {
	model, err := objview.LoadOBJ(path)
	for _, w := range model.Warnings {
		log.Warn("skipped line", "file", path, "reason", w)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return model, err
}
