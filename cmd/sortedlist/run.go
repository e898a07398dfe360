package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amp-labs/sortedlist/sortable"
	"github.com/amp-labs/sortedlist/sortedlist"
	"gopkg.in/yaml.v3"
)

// readValues returns the non-blank lines of r, trimmed.
func readValues(r io.Reader) ([]string, error) {
	var values []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			values = append(values, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}

	return values, nil
}

func (a *app) run(ctx context.Context, out io.Writer, raw []string) error {
	switch a.opts.elemType {
	case "int":
		return build(ctx, a, out, raw, func(s string) (sortable.Int, error) {
			v, err := strconv.Atoi(s)

			return sortable.Int(v), err
		})
	case "float":
		return build(ctx, a, out, raw, func(s string) (sortable.Float64, error) {
			v, err := strconv.ParseFloat(s, 64)

			return sortable.Float64(v), err
		})
	case "string":
		return build(ctx, a, out, raw, func(s string) (sortable.String, error) {
			return sortable.String(s), nil
		})
	case "natural":
		return build(ctx, a, out, raw, func(s string) (sortable.NaturalString, error) {
			return sortable.NaturalString(s), nil
		})
	default:
		return fmt.Errorf("%w: %q", errUnknownType, a.opts.elemType)
	}
}

func build[T sortable.Sortable[T]](
	ctx context.Context, a *app, out io.Writer, raw []string, parse func(string) (T, error),
) error {
	if err := checkFormat(a.opts.format); err != nil {
		return err
	}

	values, err := parseAll(raw, parse)
	if err != nil {
		return err
	}

	list, err := sortedlist.From(values...)
	if err != nil {
		return err
	}

	a.log.DebugContext(ctx, "built list", "size", list.Size())

	removals, err := parseAll(a.opts.removes, parse)
	if err != nil {
		return err
	}

	for i, v := range removals {
		removed := list.Remove(v)

		a.log.DebugContext(ctx, "remove", "value", a.opts.removes[i], "removed", removed, "size", list.Size())
	}

	var pick func() (T, error)

	switch {
	case a.opts.first:
		pick = list.First
	case a.opts.last:
		pick = list.Last
	case a.opts.getSet:
		pick = func() (T, error) { return list.Get(a.opts.get) }
	default:
		return render(out, a.opts.format, list, list.String())
	}

	single, err := pick()
	if err != nil {
		return err
	}

	return render(out, a.opts.format, single, fmt.Sprint(single))
}

func parseAll[T any](raw []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(raw))

	for i, s := range raw {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d (%q): %w", errInvalidValue, i, s, err)
		}

		values = append(values, v)
	}

	return values, nil
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// render writes v in the requested format; text uses the precomputed rendering.
func render(out io.Writer, format string, v any, text string) error {
	switch format {
	case "json":
		return json.NewEncoder(out).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		_, err := fmt.Fprintln(out, text)

		return err
	}
}
