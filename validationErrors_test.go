package errdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Gobd/errdoc"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type venue struct {
	Street string `json:"street"`
}

func (v venue) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Street, validation.Required),
	)
}

type auditBase struct {
	ID string `json:"id"`
}

type event struct {
	auditBase
	Name   string   `json:"name"`
	Seats  *int     `json:"seats"`
	Tags   []string `json:"tags"`
	Venue  venue    `json:"venue"`
	secret string
}

func (e *event) validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Seats, validation.Required),
		validation.Field(&e.Tags, validation.Each(validation.Length(2, 10))),
		validation.Field(&e.Venue),
	)
}

func TestFromValidation_Nil(t *testing.T) {
	set, err := errdoc.FromValidation("event", nil, nil)
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestFromValidation_FlattensSortedWithRejectedValues(t *testing.T) {
	e := &event{Tags: []string{"music", "x"}}
	verr := e.validate()
	require.Error(t, verr)

	set, err := errdoc.FromValidation("event", e, verr)
	require.NoError(t, err)
	assert.Empty(t, set.Globals)
	require.Len(t, set.Fields, 4)

	paths := make([]string, 0, len(set.Fields))
	for _, f := range set.Fields {
		paths = append(paths, f.Field)
		assert.Equal(t, "event", f.ObjectName)
	}
	assert.Equal(t, []string{"name", "seats", "tags.1", "venue.street"}, paths)

	name := set.Fields[0]
	assert.Equal(t, validation.ErrRequired.Code(), name.Code)
	assert.Equal(t, "cannot be blank", name.DefaultMessage)
	require.NotNil(t, name.RejectedValue)
	assert.Equal(t, "", *name.RejectedValue)

	assert.Nil(t, set.Fields[1].RejectedValue, "nil pointer has no rejected value")

	tag := set.Fields[2]
	assert.Equal(t, validation.ErrLengthOutOfRange.Code(), tag.Code)
	require.NotNil(t, tag.RejectedValue)
	assert.Equal(t, "x", *tag.RejectedValue)

	street := set.Fields[3]
	require.NotNil(t, street.RejectedValue)
	assert.Equal(t, "", *street.RejectedValue)
}

func TestFromValidation_WithoutSource(t *testing.T) {
	e := &event{Tags: []string{"x"}}
	set, err := errdoc.FromValidation("event", nil, e.validate())
	require.NoError(t, err)
	for _, f := range set.Fields {
		assert.Nil(t, f.RejectedValue, f.Field)
	}
}

func TestFromValidation_EmbeddedAndMaps(t *testing.T) {
	e := &event{auditBase: auditBase{ID: "ev-1"}}
	verr := validation.Errors{
		"id":     validation.ErrRequired,
		"secret": validation.ErrRequired,
		"venue":  validation.Errors{"missing": validation.ErrRequired},
	}

	set, err := errdoc.FromValidation("event", e, verr)
	require.NoError(t, err)
	require.Len(t, set.Fields, 3)

	assert.Equal(t, "id", set.Fields[0].Field)
	require.NotNil(t, set.Fields[0].RejectedValue)
	assert.Equal(t, "ev-1", *set.Fields[0].RejectedValue)

	assert.Equal(t, "secret", set.Fields[1].Field)
	assert.Nil(t, set.Fields[1].RejectedValue, "unexported fields are not resolved")

	assert.Equal(t, "venue.missing", set.Fields[2].Field)
	assert.Nil(t, set.Fields[2].RejectedValue)

	registry := map[string]venue{"main": {Street: "Elm"}}
	set, err = errdoc.FromValidation("registry", registry, validation.Errors{
		"main": validation.Errors{"street": validation.ErrRequired},
	})
	require.NoError(t, err)
	require.Len(t, set.Fields, 1)
	assert.Equal(t, "main.street", set.Fields[0].Field)
	require.NotNil(t, set.Fields[0].RejectedValue)
	assert.Equal(t, "Elm", *set.Fields[0].RejectedValue)
}

func TestFromValidation_PlainLeafError(t *testing.T) {
	set, err := errdoc.FromValidation("foo", nil, validation.Errors{
		"bar": errors.New("custom error"),
		"ok":  nil,
	})
	require.NoError(t, err)
	require.Len(t, set.Fields, 1)
	assert.Equal(t, "invalid", set.Fields[0].Code)
	assert.Equal(t, "custom error", set.Fields[0].DefaultMessage)
}

func TestFromValidation_TopLevelErrorIsGlobal(t *testing.T) {
	verr := validation.Validate("wire", validation.In("ach", "cc"))
	require.Error(t, verr)

	set, err := errdoc.FromValidation("payment", nil, verr)
	require.NoError(t, err)
	assert.Empty(t, set.Fields)
	require.Len(t, set.Globals, 1)
	assert.Equal(t, errdoc.GlobalError{
		ObjectName:     "payment",
		Code:           validation.ErrInInvalid.Code(),
		DefaultMessage: "must be a valid value",
	}, set.Globals[0])
}

func TestFromValidation_PassesThroughOtherErrors(t *testing.T) {
	internal := validation.NewInternalError(errors.New("rule crashed"))
	decode := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "top-level internal", err: internal, want: internal},
		{name: "nested internal", err: validation.Errors{"a": validation.Errors{"b": internal}}, want: internal},
		{name: "non-validation", err: decode, want: decode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := errdoc.FromValidation("x", nil, tt.err)
			assert.Equal(t, tt.want, err)
			assert.True(t, set.Empty())
		})
	}
}

func TestFromValidation_WrappedErrors(t *testing.T) {
	e := &event{Name: "gig", Tags: []string{"x"}}
	wrapped := fmt.Errorf("validating event: %w", e.validate())

	set, err := errdoc.FromValidation("event", e, wrapped)
	require.NoError(t, err)
	require.Len(t, set.Fields, 3)
	assert.Equal(t, "seats", set.Fields[0].Field)
	require.NotNil(t, set.Fields[1].RejectedValue)
	assert.Equal(t, "x", *set.Fields[1].RejectedValue)

	set, err = errdoc.Collect("event", e, wrapped)
	require.NoError(t, err)
	assert.Len(t, set.Fields, 3)

	global := fmt.Errorf("payment: %w", validation.Validate("wire", validation.In("ach")))
	set, err = errdoc.FromValidation("payment", nil, global)
	require.NoError(t, err)
	require.Len(t, set.Globals, 1)
	assert.Equal(t, validation.ErrInInvalid.Code(), set.Globals[0].Code)

	internal := fmt.Errorf("rules: %w", validation.NewInternalError(errors.New("rule crashed")))
	set, err = errdoc.FromValidation("x", nil, internal)
	assert.Equal(t, internal, err)
	assert.True(t, set.Empty())
}
