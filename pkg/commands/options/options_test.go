package options

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	boom := errors.New("boom")

	err := o.HandleError(boom)
	assert.ErrorIs(t, err, boom)
	var reported *ReportedError
	assert.ErrorAs(t, err, &reported)
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestHandleErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{Out: &buf}
	boom := errors.New("boom")

	assert.Same(t, boom, o.HandleError(boom))
	assert.NoError(t, o.HandleError(nil))
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "aaa bbb\nccc", Wrap("aaa bbb ccc", 8))
	assert.Equal(t, "", Wrap("", 80))
}
