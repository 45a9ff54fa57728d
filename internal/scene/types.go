package scene

import "encoding/xml"

// xmlDocument matches the document XML schema.
type xmlDocument struct {
	XMLName xml.Name  `xml:"Document"`
	Name      string   `xml:"Name,attr"`
	Items   []xmlItem `xml:"Item"`
}

type xmlItem struct {
	Name      string   `xml:"Name,attr"`
	Kind      string   `xml:"Kind,attr"`
	Asset     string   `xml:"Asset,attr,omitempty"`
	A         float64  `xml:"A,attr"`
	B         float64  `xml:"B,attr"`
	C         float64  `xml:"C,attr"`
	D         float64  `xml:"D,attr"`
	X         float64  `xml:"X,attr"`
	Y         float64  `xml:"Y,attr"`
	Width     float64  `xml:"Width,attr,omitempty"`
	Height    float64  `xml:"Height,attr,omitempty"`
	Opacity   *float64 `xml:"Opacity,attr,omitempty"`
	BlendMode string   `xml:"BlendMode,attr,omitempty"`
}
