package powers

import "fmt"

// AttribName describes one named slot of the character attribute table.
type AttribName struct {
	Name        string
	DisplayName string
	IconName    string
	// Offset is the position in the attribute table the name is rendered for.
	Offset int
}

// AttribNames holds the attribute name groups. It is built once by the table
// reader and handed to the serializer explicitly.
type AttribNames struct {
	Defense   []AttribName
	Damage    []AttribName
	Boost     []AttribName
	Group     []AttribName
	Mode      []AttribName
	Elusivity []AttribName
	StackKey  []AttribName

	byOffset map[int]string
}

// Index rebuilds the offset lookup from every group. Later groups win when
// two entries claim the same offset.
func (a *AttribNames) Index() {
	a.byOffset = make(map[int]string)
	for _, group := range a.groups() {
		for _, name := range group {
			if name.Name == "" {
				continue
			}
			a.byOffset[name.Offset] = name.Name
		}
	}
}

// Lookup returns the attribute name recorded for offset.
func (a *AttribNames) Lookup(offset int) (string, bool) {
	if a == nil {
		return "", false
	}
	if a.byOffset == nil {
		a.Index()
	}
	name, ok := a.byOffset[offset]
	return name, ok
}

// Render returns the name for offset, or a placeholder naming the raw offset.
func (a *AttribNames) Render(offset int) string {
	if name, ok := a.Lookup(offset); ok {
		return name
	}
	return fmt.Sprintf("attrib_%d", offset)
}

// Len counts named entries across all groups.
func (a *AttribNames) Len() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, group := range a.groups() {
		total += len(group)
	}
	return total
}

func (a *AttribNames) groups() [][]AttribName {
	return [][]AttribName{a.Defense, a.Damage, a.Boost, a.Group, a.Mode, a.Elusivity, a.StackKey}
}
