package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lucky-wheel/internal/wheel"
)

// Dialogs asks the user for a new value. Implementations block until the
// dialog closes and return zenity.ErrCanceled when it was dismissed.
type Dialogs interface {
	Entry(title, current string) (string, error)
	PickColor(title string, current color.Color) (color.Color, error)
}

// NativeDialogs shows system dialogs through zenity.
type NativeDialogs struct{}

func (NativeDialogs) Entry(title, current string) (string, error) {
	return zenity.Entry("Prize name",
		zenity.Title(title),
		zenity.EntryText(current),
	)
}

func (NativeDialogs) PickColor(title string, current color.Color) (color.Color, error) {
	return zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current),
		zenity.ShowPalette(),
	)
}

// EditSegment prompts for a new value of field on the segment at index and
// applies it to w. It reports whether the segment changed. A cancelled
// dialog is not an error.
func EditSegment(w *wheel.Wheel, d Dialogs, index int, field wheel.Field) (bool, error) {
	segs := w.Segments()
	if index < 0 || index >= len(segs) {
		return false, nil
	}
	seg := segs[index]

	var value string
	switch field {
	case wheel.FieldText:
		text, err := d.Entry(fmt.Sprintf("Segment %d", index+1), seg.Text)
		if err != nil {
			return false, dialogErr(err)
		}
		value = text
	case wheel.FieldColor:
		c, err := d.PickColor(fmt.Sprintf("Segment %d color", index+1), seg.FillColor(color.White))
		if err != nil {
			return false, dialogErr(err)
		}
		value = wheel.FormatHex(c)
	case wheel.FieldTextColor:
		c, err := d.PickColor(fmt.Sprintf("Segment %d text color", index+1), seg.LabelColor())
		if err != nil {
			return false, dialogErr(err)
		}
		value = wheel.FormatHex(c)
	default:
		return false, fmt.Errorf("edit segment %d: unknown field %v", index, field)
	}

	return w.UpdateSegment(index, field, value), nil
}

func dialogErr(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return fmt.Errorf("edit dialog: %w", err)
}
