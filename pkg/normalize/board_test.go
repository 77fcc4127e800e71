package normalize

import (
	"testing"

	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/connector/figma"
)

func solidFill(r, g, b float64) []figma.Fill {
	return []figma.Fill{{Type: "SOLID", Color: &figma.RGB{R: r, G: g, B: b}}}
}

func TestMapColor(t *testing.T) {
	tests := []struct {
		name  string
		fills []figma.Fill
		want  entity.StickyColor
	}{
		{"no fill defaults yellow", nil, entity.ColorYellow},
		{"gradient defaults yellow", []figma.Fill{{Type: "GRADIENT_LINEAR"}}, entity.ColorYellow},
		{"red", solidFill(0.95, 0.2, 0.2), entity.ColorRed},
		{"orange", solidFill(0.95, 0.6, 0.1), entity.ColorOrange},
		{"yellow", solidFill(0.95, 0.9, 0.3), entity.ColorYellow},
		{"green", solidFill(0.2, 0.8, 0.3), entity.ColorGreen},
		{"blue", solidFill(0.2, 0.3, 0.9), entity.ColorBlue},
		{"purple", solidFill(0.6, 0.3, 0.8), entity.ColorPurple},
		{"pink", solidFill(0.95, 0.4, 0.65), entity.ColorPink},
		{"white falls through to gray", solidFill(1, 1, 1), entity.ColorGray},
		{"solid without channels is gray", []figma.Fill{{Type: "SOLID"}}, entity.ColorGray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapColor(tt.fills); got != tt.want {
				t.Errorf("MapColor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardTraversal(t *testing.T) {
	file := &figma.File{
		Name: "Research Wall",
		Document: figma.Node{
			Id:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{
					Id:   "1:1",
					Type: "FRAME",
					Name: "Interviews",
					Children: []figma.Node{
						{
							Id:           "1:2",
							Type:         "STICKY",
							Characters:   "Users love the new search",
							Fills:        solidFill(0.2, 0.8, 0.3),
							LastModifier: &figma.User{Name: "Dana"},
							BoundingBox:  &figma.Box{X: 10, Y: 20, Width: 120, Height: 120},
						},
						{
							Id:         "1:3",
							Type:       "STICKY",
							Characters: "Checkout is broken on mobile",
						},
					},
				},
				{
					Id:             "2:1",
					Type:           "CONNECTOR",
					ConnectorStart: &figma.Endpoint{EndpointNodeId: "1:2"},
					ConnectorEnd:   &figma.Endpoint{EndpointNodeId: "1:3"},
				},
				{
					Id:         "3:1",
					Type:       "TEXT",
					Characters: "Key findings",
				},
			},
		},
	}

	result := testNormalizer().Board(file.Name, file)

	if len(result.Notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(result.Notes))
	}
	first := result.Notes[0]
	if first.Id != "1:2" || first.Group != "Interviews" || first.Contributor != "Dana" {
		t.Errorf("first note id/group/contributor = %q/%q/%q", first.Id, first.Group, first.Contributor)
	}
	if first.Color != entity.ColorGreen {
		t.Errorf("first note color = %q, want GREEN", first.Color)
	}
	if first.Position == nil || first.Position.X != 10 {
		t.Errorf("first note position not mapped: %+v", first.Position)
	}
	if first.SourceName != "Research Wall" || first.Source != entity.SourceFigmaBoard {
		t.Errorf("source fields = %q/%q", first.SourceName, first.Source)
	}

	second := result.Notes[1]
	if second.Contributor != "Unknown" {
		t.Errorf("missing modifier should read Unknown, got %q", second.Contributor)
	}
	if second.Color != entity.ColorYellow {
		t.Errorf("fill-less sticky should default YELLOW, got %q", second.Color)
	}
	if second.PredictedType != entity.TypePainPoint {
		t.Errorf("second note type = %q, want pain_point", second.PredictedType)
	}

	if len(result.Connections) != 1 {
		t.Fatalf("got %d connections, want 1", len(result.Connections))
	}
	conn := result.Connections[0]
	if conn.FromNote != "1:2" || conn.ToNote != "1:3" || conn.Relationship != "connects_to" {
		t.Errorf("connection = %+v", conn)
	}

	if len(result.Diagrams) != 1 {
		t.Fatalf("got %d diagrams, want 1", len(result.Diagrams))
	}
	if result.Diagrams[0].Kind != "text" || result.Diagrams[0].Content != "Key findings" {
		t.Errorf("diagram = %+v", result.Diagrams[0])
	}
}
