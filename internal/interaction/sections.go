package interaction

// SectionBox is a section's vertical extent in document coordinates.
type SectionBox struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the last section, in the given order, whose extent
// [Top, Top+Height) contains scrollY+lookahead. prev is returned when no
// section matches.
func ActiveSection(sections []SectionBox, scrollY, lookahead float64, prev string) string {
	pos := scrollY + lookahead
	active := prev
	for _, s := range sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			active = s.ID
		}
	}
	return active
}

// Elevated reports whether the nav bar is past the elevation threshold.
func Elevated(scrollY, threshold float64) bool {
	return scrollY > threshold
}

func (c *Controller) sectionBoxes() []SectionBox {
	boxes := make([]SectionBox, 0, len(c.cfg.Sections))
	for _, id := range c.cfg.Sections {
		el, ok := c.doc.ByID(id)
		if !ok {
			continue
		}
		top, height := el.Offset()
		boxes = append(boxes, SectionBox{ID: id, Top: top, Height: height})
	}
	return boxes
}
