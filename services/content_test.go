package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeContentNestedObjects(t *testing.T) {
	dst := map[string]interface{}{
		"homepage": map[string]interface{}{
			"hero": map[string]interface{}{
				"title":    "A",
				"subtitle": "B",
			},
		},
		"contact": map[string]interface{}{"phone": "123"},
	}
	src := map[string]interface{}{
		"homepage": map[string]interface{}{
			"hero": map[string]interface{}{
				"title": "New",
			},
		},
	}

	out := MergeContent(dst, src)

	hero := out["homepage"].(map[string]interface{})["hero"].(map[string]interface{})
	assert.Equal(t, "New", hero["title"])
	assert.Equal(t, "B", hero["subtitle"])
	assert.Equal(t, "123", out["contact"].(map[string]interface{})["phone"])
}

func TestMergeContentReplacesArrays(t *testing.T) {
	dst := map[string]interface{}{"images": []interface{}{"a.jpg", "b.jpg"}}
	src := map[string]interface{}{"images": []interface{}{"c.jpg"}}

	out := MergeContent(dst, src)
	assert.Equal(t, []interface{}{"c.jpg"}, out["images"])
}

func TestMergeContentDoesNotMutateInputs(t *testing.T) {
	dst := map[string]interface{}{"a": map[string]interface{}{"x": 1}}
	src := map[string]interface{}{"a": map[string]interface{}{"y": 2}}

	MergeContent(dst, src)

	assert.NotContains(t, dst["a"], "y")
	assert.NotContains(t, src["a"], "x")
}

func TestDefaultContentCoversSections(t *testing.T) {
	defaults := DefaultContent()
	assert.Contains(t, defaults, "homepage")
	assert.Contains(t, defaults, "pricing")
	assert.Contains(t, defaults, "contact")

	plans := defaults["pricing"].(map[string]interface{})["standard"].(map[string]interface{})["plans"].([]interface{})
	assert.Len(t, plans, 6)
}
