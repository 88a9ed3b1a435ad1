// Package chart turns analysis datasets into plotly figure specifications.
// Figures are plain data marshaled to JSON; the browser side hands them to
// plotly.js unchanged.
package chart

import (
	"encoding/json"

	"github.com/tomvill/f1-analytics/pkg/style"
)

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// JSON renders the figure spec for embedding into a page.
func (f *Figure) JSON() (string, error) {
	buf, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Trace is one plotly trace. Only the fields the renderers use are modeled;
// zero values are omitted from the wire form.
type Trace struct {
	Type          string      `json:"type"`
	Name          string      `json:"name,omitempty"`
	Mode          string      `json:"mode,omitempty"`
	X             []float64   `json:"x,omitempty"`
	Y             []float64   `json:"y,omitempty"`
	YLabels       []string    `json:"-"`
	Z             [][]float64 `json:"z,omitempty"`
	ZMin          *float64    `json:"zmin,omitempty"`
	ZMax          *float64    `json:"zmax,omitempty"`
	Text          []string    `json:"text,omitempty"`
	Base          []float64   `json:"base,omitempty"`
	Orientation   string      `json:"orientation,omitempty"`
	Line          *Line       `json:"line,omitempty"`
	Marker        *Marker     `json:"marker,omitempty"`
	Colorscale    [][2]any    `json:"colorscale,omitempty"`
	ShowScale     *bool       `json:"showscale,omitempty"`
	Colorbar      *Colorbar   `json:"colorbar,omitempty"`
	HoverTemplate string      `json:"hovertemplate,omitempty"`
	HoverText     []string    `json:"hovertext,omitempty"`
	LegendGroup   string      `json:"legendgroup,omitempty"`
	ShowLegend    *bool       `json:"showlegend,omitempty"`
}

// MarshalJSON maps YLabels onto the y field for categorical axes.
func (tr Trace) MarshalJSON() ([]byte, error) {
	type alias Trace
	if tr.YLabels == nil {
		return json.Marshal(alias(tr))
	}
	return json.Marshal(struct {
		alias
		Y []string `json:"y"`
	}{alias: alias(tr), Y: tr.YLabels})
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"-"`
	Size   float64  `json:"size,omitempty"`
	Symbol string   `json:"symbol,omitempty"`
}

// MarshalJSON lets per-point colors take precedence over the single color.
func (m Marker) MarshalJSON() ([]byte, error) {
	type alias Marker
	if m.Colors == nil {
		return json.Marshal(alias(m))
	}
	return json.Marshal(struct {
		alias
		Color []string `json:"color"`
	}{alias: alias(m), Color: m.Colors})
}

type Colorbar struct {
	Title    string    `json:"title,omitempty"`
	TickVals []float64 `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`
}

type Layout struct {
	Title         string       `json:"title,omitempty"`
	XAxis         *Axis        `json:"xaxis,omitempty"`
	YAxis         *Axis        `json:"yaxis,omitempty"`
	BarMode       string       `json:"barmode,omitempty"`
	Height        int          `json:"height,omitempty"`
	ShowLegend    *bool        `json:"showlegend,omitempty"`
	PaperBGColor  string       `json:"paper_bgcolor,omitempty"`
	PlotBGColor   string       `json:"plot_bgcolor,omitempty"`
	Font          *Font        `json:"font,omitempty"`
	Shapes        []Shape      `json:"shapes,omitempty"`
	Annotations   []Annotation `json:"annotations,omitempty"`
	HoverMode     string       `json:"hovermode,omitempty"`
}

type Axis struct {
	Title      string    `json:"title,omitempty"`
	AutoRange  string    `json:"autorange,omitempty"` // "reversed" flips race positions
	ShowGrid   *bool     `json:"showgrid,omitempty"`
	GridColor  string    `json:"gridcolor,omitempty"`
	ZeroLine   *bool     `json:"zeroline,omitempty"`
	TickVals   []float64 `json:"tickvals,omitempty"`
	TickText   []string  `json:"ticktext,omitempty"`
	Visible    *bool     `json:"visible,omitempty"`
	ScaleRatio float64   `json:"scaleratio,omitempty"`
	ScaleWith  string    `json:"scaleanchor,omitempty"`
}

type Font struct {
	Color string `json:"color,omitempty"`
}

// Shape is a layout overlay, used for the rain bands.
type Shape struct {
	Type      string  `json:"type"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	X0        float64 `json:"x0"`
	X1        float64 `json:"x1"`
	Y0        float64 `json:"y0"`
	Y1        float64 `json:"y1"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Layer     string  `json:"layer,omitempty"`
	Line      *Line   `json:"line,omitempty"`
}

// Annotation marks a point, used for the corner numbers on the track map.
type Annotation struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

func boolPtr(v bool) *bool { return &v }

// darkLayout is the base layout shared by every page figure.
func darkLayout(title string) Layout {
	return Layout{
		Title:        title,
		PaperBGColor: style.Paper,
		PlotBGColor:  style.Background,
		Font:         &Font{Color: style.TextColor},
		HoverMode:    "closest",
	}
}

func gridAxis(title string) *Axis {
	return &Axis{
		Title:     title,
		ShowGrid:  boolPtr(true),
		GridColor: style.GridColor,
	}
}
