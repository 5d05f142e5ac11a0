package scene

// NodeType identifies the role of a node inside a material graph.
type NodeType string

const (
	NodeTexImage       NodeType = "TEX_IMAGE"
	NodeGroup          NodeType = "GROUP"
	NodeGroupOutput    NodeType = "GROUP_OUTPUT"
	NodePrincipled     NodeType = "BSDF_PRINCIPLED"
	NodeOutputMaterial NodeType = "OUTPUT_MATERIAL"
	NodeNormalMap      NodeType = "NORMAL_MAP"
)

// Well-known socket names used when walking and rebuilding graphs.
const (
	SocketSurface   = "Surface"
	SocketBaseColor = "Base Color"
	SocketColor     = "Color"
	SocketAlpha     = "Alpha"
	SocketNormal    = "Normal"
	SocketBSDF      = "BSDF"
)

// Node is one node in a material graph. TexImage nodes carry an Image; Group
// nodes reference a Subgraph, which may itself reference further groups
// (possibly cyclically, so traversals must carry a visited set).
type Node struct {
	Name     string
	Type     NodeType
	Image    *Image
	Subgraph *NodeGraph
}

// Link connects an output socket of one node to an input socket of another.
type Link struct {
	FromNode   *Node
	FromSocket string
	ToNode     *Node
	ToSocket   string
}

// NodeGraph is a material node tree or a group sub-tree.
type NodeGraph struct {
	Name  string
	Nodes []*Node
	Links []*Link
}

// NewGraph creates an empty node graph.
func NewGraph(name string) *NodeGraph {
	return &NodeGraph{Name: name}
}

// AddNode appends a node and returns it for chaining.
func (g *NodeGraph) AddNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}

// Connect links from's output socket to to's input socket.
func (g *NodeGraph) Connect(from *Node, fromSocket string, to *Node, toSocket string) {
	g.Links = append(g.Links, &Link{FromNode: from, FromSocket: fromSocket, ToNode: to, ToSocket: toSocket})
}

// Output returns the final material-output node, or nil.
func (g *NodeGraph) Output() *Node {
	for _, n := range g.Nodes {
		if n.Type == NodeOutputMaterial {
			return n
		}
	}
	return nil
}

// Incoming returns the link feeding the named input socket of to, or nil.
func (g *NodeGraph) Incoming(to *Node, socket string) *Link {
	for _, l := range g.Links {
		if l.ToNode == to && l.ToSocket == socket {
			return l
		}
	}
	return nil
}

// IncomingAll returns every link feeding any input socket of to.
func (g *NodeGraph) IncomingAll(to *Node) []*Link {
	var out []*Link
	for _, l := range g.Links {
		if l.ToNode == to {
			out = append(out, l)
		}
	}
	return out
}

// GroupOutputs returns the group-output nodes of a sub-graph.
func (g *NodeGraph) GroupOutputs() []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Type == NodeGroupOutput {
			out = append(out, n)
		}
	}
	return out
}

// Images returns every image referenced by TexImage nodes of this graph only
// (no recursion into groups).
func (g *NodeGraph) Images() []*Image {
	var out []*Image
	for _, n := range g.Nodes {
		if n.Type == NodeTexImage && n.Image != nil {
			out = append(out, n.Image)
		}
	}
	return out
}
