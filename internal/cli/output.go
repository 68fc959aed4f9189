package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
	}
}

// writeProjects prints projects in the requested format
func writeProjects(w io.Writer, format string, projects []*model.ProjectRecord) error {
	if projects == nil {
		projects = []*model.ProjectRecord{}
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(projects, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling projects: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(projects)
		if err != nil {
			return fmt.Errorf("error marshaling projects: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return writeTable(w, projects)
	}
}

func writeTable(w io.Writer, projects []*model.ProjectRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDAW\tDEMO CLIP\tMODIFIED\tPATH")
	for _, p := range projects {
		clip := p.DemoClipName()
		if clip == "" {
			clip = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.Kind, clip, p.ModTime.Format("2006-01-02 15:04"), p.FilePath)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d projects\n", len(projects))
	return err
}
