package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	out := *l
	if l.Coordinates != nil {
		c := *l.Coordinates
		out.Coordinates = &c
	}
	return &out
}
