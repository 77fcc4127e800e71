package figma

// File is the top-level response of GET /v1/files/:key.
type File struct {
	Name     string `json:"name"`
	Document Node   `json:"document"`
}

// Node is one element of the board's hierarchical document tree. Only the
// fields the pipeline reads are mapped.
type Node struct {
	Id             string    `json:"id"`
	Type           string    `json:"type"` // STICKY, CONNECTOR, FRAME, RECTANGLE, ELLIPSE, TEXT, ...
	Name           string    `json:"name"`
	Characters     string    `json:"characters"`
	Fills          []Fill    `json:"fills"`
	LastModifier   *User     `json:"lastModifier"`
	BoundingBox    *Box      `json:"absoluteBoundingBox"`
	ConnectorStart *Endpoint `json:"connectorStart"`
	ConnectorEnd   *Endpoint `json:"connectorEnd"`
	Children       []Node    `json:"children"`
}

type Fill struct {
	Type  string `json:"type"` // SOLID, GRADIENT_LINEAR, ...
	Color *RGB   `json:"color"`
}

// RGB channels are normalized to [0,1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type User struct {
	Name string `json:"name"`
}

type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Endpoint struct {
	EndpointNodeId string `json:"endpointNodeId"`
}
