package normalize

import (
	"strings"

	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/connector/figma"
)

// BoardResult carries everything a board traversal extracts.
type BoardResult struct {
	Notes       []entity.Note
	Connections []entity.Connection
	Diagrams    []entity.Shape
}

// Board walks the board's node tree depth-first. Sticky notes become
// Notes (tagged with the enclosing frame's name), connector nodes become
// Connections, and plain shapes become Diagrams.
func (n *Normalizer) Board(boardName string, file *figma.File) BoardResult {
	var result BoardResult
	n.walk(&result, boardName, &file.Document, "")
	return result
}

func (n *Normalizer) walk(result *BoardResult, boardName string, node *figma.Node, frame string) {
	switch node.Type {
	case "STICKY":
		note := n.build(node.Id, entity.SourceFigmaBoard, boardName, node.Characters, authorOf(node))
		note.Color = MapColor(node.Fills)
		note.Position = positionOf(node.BoundingBox)
		note.Group = frame
		result.Notes = append(result.Notes, note)

	case "CONNECTOR":
		conn := entity.Connection{
			Relationship: "connects_to",
			Source:       entity.SourceFigmaBoard,
		}
		if node.ConnectorStart != nil {
			conn.FromNote = node.ConnectorStart.EndpointNodeId
		}
		if node.ConnectorEnd != nil {
			conn.ToNote = node.ConnectorEnd.EndpointNodeId
		}
		result.Connections = append(result.Connections, conn)

	case "RECTANGLE", "ELLIPSE", "TEXT":
		result.Diagrams = append(result.Diagrams, entity.Shape{
			Id:       node.Id,
			Kind:     strings.ToLower(node.Type),
			Content:  node.Characters,
			Position: positionOf(node.BoundingBox),
		})
	}

	childFrame := frame
	if node.Type == "FRAME" {
		childFrame = node.Name
	}
	for i := range node.Children {
		n.walk(result, boardName, &node.Children[i], childFrame)
	}
}

func authorOf(node *figma.Node) string {
	if node.LastModifier != nil && node.LastModifier.Name != "" {
		return node.LastModifier.Name
	}
	return "Unknown"
}

func positionOf(box *figma.Box) *entity.Position {
	if box == nil {
		return nil
	}
	return &entity.Position{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}
}

// MapColor buckets a solid fill into the discrete sticky palette using
// fixed channel thresholds. Boards without a solid fill read as YELLOW,
// the default sticky color.
func MapColor(fills []figma.Fill) entity.StickyColor {
	if len(fills) == 0 || fills[0].Type != "SOLID" {
		return entity.ColorYellow
	}

	// Missing channel data decodes as white.
	r, g, b := 1.0, 1.0, 1.0
	if c := fills[0].Color; c != nil {
		r, g, b = c.R, c.G, c.B
	}

	switch {
	case r > 0.8 && g < 0.5 && b < 0.5:
		return entity.ColorRed
	case r > 0.8 && g > 0.5 && b < 0.3:
		return entity.ColorOrange
	case r > 0.8 && g > 0.8 && b < 0.5:
		return entity.ColorYellow
	case r < 0.5 && g > 0.7 && b < 0.5:
		return entity.ColorGreen
	case r < 0.5 && g < 0.5 && b > 0.8:
		return entity.ColorBlue
	case r > 0.5 && g < 0.5 && b > 0.7:
		return entity.ColorPurple
	case r > 0.8 && g < 0.5 && b > 0.6:
		return entity.ColorPink
	default:
		return entity.ColorGray
	}
}
