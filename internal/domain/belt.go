package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Belt is a rank in the club's grading system. The zero value is the white belt.
type Belt int

const (
	BeltWhite Belt = iota
	BeltWhiteYellow
	BeltYellow
	BeltYellowOrange
	BeltOrange
	BeltOrangeGreen
	BeltGreen
	BeltGreenBlue
	BeltBlue
	BeltBlueBrown
	BeltBrown
	BeltBlack1Dan
	BeltBlack2Dan
	BeltBlack3Dan
	BeltBlack4Dan
	BeltBlack5Dan
)

// BeltCount is the number of ranks.
const BeltCount = 16

type beltInfo struct {
	name  string
	label string
	color string
}

// name is the value kept in the store.
var belts = [BeltCount]beltInfo{
	{name: "Bianca", label: "White", color: "#f8f9fa"},
	{name: "Bianca-Gialla", label: "White-Yellow", color: "#fff59d"},
	{name: "Gialla", label: "Yellow", color: "#ffeb3b"},
	{name: "Gialla-Arancione", label: "Yellow-Orange", color: "#ffd54f"},
	{name: "Arancione", label: "Orange", color: "#ffa726"},
	{name: "Arancione-Verde", label: "Orange-Green", color: "#aed581"},
	{name: "Verde", label: "Green", color: "#4caf50"},
	{name: "Verde-Blu", label: "Green-Blue", color: "#26a69a"},
	{name: "Blu", label: "Blue", color: "#2196f3"},
	{name: "Blu-Marrone", label: "Blue-Brown", color: "#795548"},
	{name: "Marrone", label: "Brown", color: "#5d4037"},
	{name: "Nera 1° Dan", label: "Black 1st Dan", color: "#212529"},
	{name: "Nera 2° Dan", label: "Black 2nd Dan", color: "#212529"},
	{name: "Nera 3° Dan", label: "Black 3rd Dan", color: "#212529"},
	{name: "Nera 4° Dan", label: "Black 4th Dan", color: "#212529"},
	{name: "Nera 5° Dan", label: "Black 5th Dan", color: "#212529"},
}

// Belts returns every rank from white to 5th dan black.
func Belts() []Belt {
	out := make([]Belt, BeltCount)
	for i := range out {
		out[i] = Belt(i)
	}
	return out
}

// ParseBelt accepts either the stored name ("Blu") or the English label ("blue"), ignoring case.
func ParseBelt(s string) (Belt, error) {
	s = strings.TrimSpace(s)
	for i, b := range belts {
		if strings.EqualFold(s, b.name) || strings.EqualFold(s, b.label) {
			return Belt(i), nil
		}
	}
	return 0, fmt.Errorf("unknown belt %q", s)
}

func (b Belt) Valid() bool {
	return b >= BeltWhite && b <= BeltBlack5Dan
}

func (b Belt) Ordinal() int {
	return int(b)
}

func (b Belt) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Belt(%d)", int(b))
	}
	return belts[b].name
}

func (b Belt) Label() string {
	if !b.Valid() {
		return ""
	}
	return belts[b].label
}

func (b Belt) Color() string {
	if !b.Valid() {
		return ""
	}
	return belts[b].color
}

func (b Belt) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid belt %d", int(b))
	}
	return json.Marshal(b.String())
}

func (b *Belt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBelt(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
