// Package topics provides a topic-based help system for Cobra CLI
// applications. Topics are markdown or text files read from an fs.FS,
// typically an embedded directory, and shown through a string flag such as
// "--topic undo". The reserved name "topics" lists them.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	source     fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
	flagName   string
}

// ListName is the topic name that lists every topic
const ListName = "topics"

// DefaultFlagName is the flag topics are selected with
const DefaultFlagName = "topic"

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer

	// FlagName is the root command's string flag that selects a topic.
	// Defaults to DefaultFlagName.
	FlagName string
}

// New creates a new TopicManager with default extensions
func New(source fs.FS) *TopicManager {
	return NewWithOptions(source, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(source fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		source:     source,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
		flagName:   opts.FlagName,
	}
	if tm.flagName == "" {
		tm.flagName = DefaultFlagName
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

// Scan loads every topic file found in the source
func (tm *TopicManager) Scan() error {
	if tm.source == nil {
		return nil
	}
	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names ("--undo") also
// match topics named "option-undo".
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}
	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders the named topic to w
func (tm *TopicManager) Show(w io.Writer, name string) error {
	topic, exists := tm.GetTopic(name)
	if !exists {
		return fmt.Errorf("unknown help topic %q, use --%s %s to list them", name, tm.flagName, ListName)
	}
	_, err := fmt.Fprint(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
	return err
}

// WriteList prints the available topics, options separately
func (tm *TopicManager) WriteList(w io.Writer, program string) {
	topics := tm.ListTopics()
	if len(topics) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range topics {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s --%s <topic>' to read about a specific topic.\n", program, tm.flagName)
}

// Run shows the named topic, or the topic list for ListName
func (tm *TopicManager) Run(w io.Writer, name, program string) error {
	if name == ListName {
		tm.WriteList(w, program)
		return nil
	}
	return tm.Show(w, name)
}

// Initialize sets up the topic-based help system with default extensions
func Initialize(rootCmd *cobra.Command, source fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(rootCmd, source, Options{})
}

// InitializeWithOptions scans the topics and, when rootCmd defines the topic
// flag, completes its values with the topic names. The command's RunE is
// expected to hand the flag value to Run.
func InitializeWithOptions(rootCmd *cobra.Command, source fs.FS, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(source, opts)
	if err := tm.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	if rootCmd.Flags().Lookup(tm.flagName) != nil {
		err := rootCmd.RegisterFlagCompletionFunc(tm.flagName,
			func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
				return append([]string{ListName}, tm.ListTopics()...), cobra.ShellCompDirectiveNoFileComp
			})
		if err != nil {
			return nil, fmt.Errorf("failed to register topic completion: %w", err)
		}
	}
	return tm, nil
}
