//go:build js
// +build js

package dom

import (
	"syscall/js"

	"github.com/pkg/errors"
)

var (
	document = &Document{NewFromJS(js.Global().Get("document"))}
)

type Document struct {
	*Element
}

func GetDocument() *Document {
	return document
}

func (d *Document) GetElementByID(id string) *Element {
	return NewFromJS(d.elem.Call("getElementById", id))
}

// Canvas looks up the element with the given id for use as an input surface.
func (d *Document) Canvas(id string) (*Canvas, error) {
	elem := d.GetElementByID(id)
	if elem == nil {
		return nil, errors.Errorf("no element with id %q", id)
	}
	return &Canvas{Element: elem}, nil
}
