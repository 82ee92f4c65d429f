package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_AddsRecordAtEnd(t *testing.T) {
	todos := []Record{{Text: "Learn React"}}

	got := Append(todos, Record{Text: "Learn TDD"})

	assert.Equal(t, []Record{{Text: "Learn React"}, {Text: "Learn TDD"}}, got)
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	todos := []Record{{Text: "Learn React"}}

	got := Append(todos, Record{Text: "Learn TDD"})

	assert.Equal(t, []Record{{Text: "Learn React"}}, todos)
	require.Len(t, got, 2)
	assert.NotSame(t, &todos[0], &got[0], "result must not share the input's backing array")

	got[0].Text = "changed"
	assert.Equal(t, "Learn React", todos[0].Text)
}

func TestAppend_SpareCapacityIsNotShared(t *testing.T) {
	// Input with spare capacity: a naive append would write into it.
	todos := make([]Record, 1, 4)
	todos[0] = Record{Text: "a"}

	first := Append(todos, Record{Text: "b"})
	second := Append(todos, Record{Text: "c"})

	assert.Equal(t, []Record{{Text: "a"}, {Text: "b"}}, first)
	assert.Equal(t, []Record{{Text: "a"}, {Text: "c"}}, second)
	assert.Len(t, todos, 1)
	assert.Equal(t, Record{}, todos[:2][1], "spare capacity of the input must stay untouched")
}

func TestAppend_LengthAndOrder(t *testing.T) {
	for n := 0; n < 5; n++ {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			s := []Record{}
			for i := 0; i < n; i++ {
				s = append(s, Record{Text: fmt.Sprintf("item %d", i)})
			}
			r := Record{Text: "new"}

			got := Append(s, r)

			require.Len(t, got, n+1)
			assert.Equal(t, s, got[:n])
			assert.Equal(t, r, got[n])
		})
	}
}

func TestAppend_NilInput(t *testing.T) {
	got := Append(nil, Record{Text: "only"})
	assert.Equal(t, []Record{{Text: "only"}}, got)
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank("   \t\n"))
	assert.False(t, Blank(" Learn TDD "))
}
