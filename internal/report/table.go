// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Human-readable report summary

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sony-level/stackprobe/internal/stacks"
)

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	yesColor   = color.New(color.FgGreen)
	noColor    = color.New(color.FgHiBlack)
	errorColor = color.New(color.FgRed, color.Bold)
)

// noneLabel is shown for absent values
const noneLabel = "-"

func writeTable(w io.Writer, doc any) error {
	switch d := doc.(type) {
	case *ErrorReport:
		_, err := fmt.Fprintf(w, "%s %s\n", errorColor.Sprint("error:"), d.Error)
		return err
	case ErrorReport:
		return writeTable(w, &d)
	case *Report:
		return writeReportTable(w, d)
	case Report:
		return writeReportTable(w, &d)
	default:
		return fmt.Errorf("%w: table output does not support %T", ErrUnknownFormat, doc)
	}
}

func writeReportTable(w io.Writer, r *Report) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	rows := [][]string{
		{"Path", r.Path},
		{"Name", r.Name},
		{"Runtime", orNone(r.RuntimeKind())},
	}
	rows = append(rows, runtimeRows(r.Runtime)...)
	rows = append(rows,
		[]string{"Services", formatServices(r.Services)},
		[]string{"Ports", formatPorts(r.Ports)},
		[]string{"Dockerfile", yesNo(r.ExistingDocker.Dockerfile)},
		[]string{"Compose file", yesNo(r.ExistingDocker.DockerCompose)},
		[]string{".dockerignore", yesNo(r.ExistingDocker.Dockerignore)},
	)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{labelColor.Sprint(row[0]), row[1]})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// runtimeRows lists the variant-specific fields of rt
func runtimeRows(rt stacks.Runtime) [][]string {
	switch v := rt.(type) {
	case *stacks.NodeRuntime:
		return [][]string{
			{"Framework", deref(v.Framework)},
			{"Package manager", v.PackageManager},
			{"TypeScript", yesNo(v.TypeScript)},
			{"Node version", deref(v.NodeVersion)},
			{"Scripts", formatScripts(v.Scripts)},
			{"Dependencies", formatList(v.Dependencies)},
		}
	case *stacks.PythonRuntime:
		return [][]string{
			{"Framework", deref(v.Framework)},
			{"Package manager", v.PackageManager},
			{"Entry point", deref(v.EntryPoint)},
			{"Machine learning", yesNo(v.IsML)},
			{"Dependencies", formatList(v.Dependencies)},
		}
	case *stacks.GoRuntime:
		return [][]string{
			{"Module", deref(v.Module)},
			{"Go version", deref(v.GoVersion)},
			{"Entry point", deref(v.EntryPoint)},
		}
	case *stacks.RustRuntime:
		return [][]string{
			{"Package", deref(v.PackageName)},
			{"Workspace", yesNo(v.IsWorkspace)},
		}
	case *stacks.JavaRuntime:
		return [][]string{
			{"Build tool", v.BuildTool},
			{"Framework", deref(v.Framework)},
		}
	case *stacks.DotnetRuntime:
		return [][]string{
			{"Language", v.Language},
			{"Framework", deref(v.Framework)},
			{"Project file", deref(v.ProjectFile)},
		}
	default:
		return nil
	}
}

func formatServices(services []ServiceFinding) string {
	if len(services) == 0 {
		return noneLabel
	}
	parts := make([]string, 0, len(services))
	for _, s := range services {
		parts = append(parts, fmt.Sprintf("%s (%s, %d)", s.Name, s.Image, s.Port))
	}
	return strings.Join(parts, "\n")
}

func formatPorts(ports []int) string {
	if len(ports) == 0 {
		return noneLabel
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, ", ")
}

func formatScripts(scripts map[string]string) string {
	if len(scripts) == 0 {
		return noneLabel
	}
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func formatList(items []string) string {
	if len(items) == 0 {
		return noneLabel
	}
	return strings.Join(items, ", ")
}

func deref(s *string) string {
	if s == nil {
		return noneLabel
	}
	return *s
}

func orNone(s string) string {
	if s == "" {
		return noneLabel
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return yesColor.Sprint("yes")
	}
	return noColor.Sprint("no")
}
