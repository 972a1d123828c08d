// Package session runs the interactive load, select, display and save flow.
package session

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/netisu/objview"
	"github.com/netisu/objview/prompt"
)

// Request is everything a Displayer needs to show one object.
type Request struct {
	Path   string
	Model  *objview.Model
	Object *objview.Object
	Mode   objview.DisplayMode
}

// Displayer shows an object until the user closes it.
type Displayer interface {
	Display(Request) error
}

// DisplayFunc adapts a function to the Displayer interface.
type DisplayFunc func(Request) error

func (f DisplayFunc) Display(r Request) error { return f(r) }

// Session drives one interactive run.
type Session struct {
	Prompt  *prompt.Prompter
	Display Displayer
	Config  objview.Config
	Log     *slog.Logger
}

const (
	actionQuestion = "Choose action - 1 to display an existing object, 2 to open a saved file: "
	openQuestion   = "Enter the filename of the saved object: "
	nameQuestion   = "Enter the name of the object to display: "
	modeQuestion   = "Enter display mode (1 for PointCloud, 2 for Wireframe, 3 for Solid): "
	saveQuestion   = "Enter filename to save the object (e.g., 'saved_object.obj'): "
)

// Run asks for an action and performs it. User mistakes are reported on the
// console and end the run without an error; only console I/O failures are
// returned.
func (s *Session) Run() error {
	action, err := s.Prompt.Ask(actionQuestion)
	if err != nil {
		return err
	}
	switch action {
	case "1":
		return s.viewExisting()
	case "2":
		return s.openSaved()
	}
	s.Prompt.Errorf("Invalid action %q.", action)
	return nil
}

func (s *Session) viewExisting() error {
	path := s.Config.Model
	model := s.load(path)
	obj, err := s.choose(path, model)
	if err != nil || obj == nil {
		return err
	}
	name, err := s.Prompt.AskPath(saveQuestion)
	if errors.Is(err, prompt.ErrBadPath) {
		s.Prompt.Errorf("Error saving object: %v", err)
		return nil
	}
	if err != nil {
		return err
	}
	s.save(name, obj, model)
	return nil
}

func (s *Session) openSaved() error {
	path, err := s.Prompt.AskPath(openQuestion)
	if errors.Is(err, prompt.ErrBadPath) {
		s.Prompt.Errorf("Error opening file: %v", err)
		return nil
	}
	if err != nil {
		return err
	}
	if path == "" {
		s.Prompt.Errorf("No filename given.")
		return nil
	}
	model := s.load(path)
	_, err = s.choose(path, model)
	return err
}

// load decodes path, reporting problems without giving up: a missing or
// unreadable file leaves whatever was decoded, possibly nothing.
func (s *Session) load(path string) *objview.Model {
	model, err := objview.LoadOBJ(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.Prompt.Errorf("File not found: %s", path)
	case err != nil:
		s.Prompt.Errorf("Error reading file: %v", err)
	}
	for _, w := range model.Warnings {
		s.Log.Warn("skipped line", "file", path, "reason", w)
	}
	s.Log.Debug("loaded model", "file", path, "objects", model.Len(), "vertices", len(model.Vertices))
	return model
}

// choose lists the catalog, asks for an object and a mode and displays it.
// It returns a nil object when the user's choice was rejected.
func (s *Session) choose(path string, model *objview.Model) (*objview.Object, error) {
	for _, name := range model.Names() {
		s.Prompt.Printf("Object: %s\n", name)
	}
	name, err := s.Prompt.Ask(nameQuestion)
	if err != nil {
		return nil, err
	}
	obj, ok := model.Lookup(name)
	if !ok {
		s.Prompt.Errorf("Object '%s' not found.", name)
		if hint := model.Suggest(name); hint != "" {
			s.Prompt.Printf("Did you mean '%s'?\n", hint)
		}
		return nil, nil
	}
	answer, err := s.Prompt.Ask(modeQuestion)
	if err != nil {
		return nil, err
	}
	mode, err := objview.ParseDisplayMode(answer)
	if err != nil {
		s.Prompt.Errorf("Invalid display mode.")
		return nil, nil
	}
	req := Request{Path: path, Model: model, Object: obj, Mode: mode}
	if err := s.Display.Display(req); err != nil {
		s.Prompt.Errorf("Could not display '%s': %v", name, err)
	}
	return obj, nil
}

func (s *Session) save(path string, obj *objview.Object, model *objview.Model) {
	if path == "" {
		s.Prompt.Println("No filename given, object not saved.")
		return
	}
	warn := func(idx objview.Index) {
		s.Log.Warn("skipping invalid vertex index", "index", int(idx), "object", obj.Name)
	}
	stats, err := objview.SaveOBJ(path, obj, model.Vertices, warn)
	if err != nil {
		s.Prompt.Errorf("Error saving object: %v", err)
		return
	}
	s.Log.Debug("exported", "file", path, "vertices", stats.Vertices, "faces", stats.Faces, "skipped", stats.Skipped)
	s.Prompt.Successf("Object '%s' saved to %s", obj.Name, path)
}
