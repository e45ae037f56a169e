package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"tone-backend/internal/analysis"
	"tone-backend/internal/emotion"
	"tone-backend/internal/suggestions"
)

var paletteAttrs = map[string]color.Attribute{
	"green":  color.FgGreen,
	"blue":   color.FgBlue,
	"red":    color.FgRed,
	"purple": color.FgMagenta,
	"orange": color.FgYellow,
	"brown":  color.FgHiYellow,
	"gray":   color.FgHiBlack,
}

func emotionText(c emotion.Category) string {
	attr, ok := paletteAttrs[c.Color()]
	if !ok {
		return string(c)
	}
	return color.New(attr).Sprint(string(c))
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{Borders: tw.BorderNone}),
	)
}

// writeReport prints the console summary of an analysis.
func writeReport(w io.Writer, a analysis.DocumentAnalysis) error {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Document Analysis:")
	fmt.Fprintf(w, "Overall Sentiment: %s\n", a.DocumentSentiment.Overall)
	fmt.Fprintf(w, "Dominant Emotion: %s\n", emotionText(a.DocumentEmotions.Dominant))

	if !a.Consistency.IsConsistent {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Emotional Inconsistencies Detected:")
		for _, inc := range a.Consistency.Inconsistencies {
			fmt.Fprintf(w, "- Paragraph %d has emotion '%s' while the main emotion is '%s'\n",
				inc.ParagraphIndex+1, emotionText(inc.Emotion), emotionText(inc.MainEmotion))
		}
	}

	if len(a.Shifts) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Emotional Shifts Detected:")
		for _, s := range a.Shifts {
			fmt.Fprintf(w, "- Shift from '%s' to '%s' between sentences:\n", emotionText(s.FromEmotion), emotionText(s.ToEmotion))
			fmt.Fprintf(w, "  %q\n", s.FromSentence)
			fmt.Fprintf(w, "  %q\n", s.ToSentence)
		}
	}

	if len(a.Profile) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	bold.Fprintln(w, "Emotion Profile:")
	table := newTable(w)
	table.Header([]string{"EMOTION", "MEAN"})
	for _, p := range a.Profile {
		if err := table.Append([]string{emotionText(p.Emotion), strconv.FormatFloat(p.Mean, 'f', 3, 64)}); err != nil {
			return err
		}
	}
	return table.Render()
}

// writeSuggestions prints rewrite proposals and advice.
func writeSuggestions(w io.Writer, r suggestions.Result) error {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "Current dominant emotion: %s\n", emotionText(r.CurrentDominant))
	fmt.Fprintf(w, "Target emotion: %s\n", emotionText(emotion.Category(r.TargetEmotion)))

	if len(r.Specific) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Sentence Rewrites:")
		table := newTable(w)
		table.Header([]string{"ORIGINAL", "IMPROVED", "METHOD"})
		for _, s := range r.Specific {
			if err := table.Append([]string{s.Original, s.Improved, s.Method}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(r.General) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "General Suggestions:")
		for _, g := range r.General {
			fmt.Fprintf(w, "- %s\n", g)
		}
	}
	return nil
}
