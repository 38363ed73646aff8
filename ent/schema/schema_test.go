package schema

import (
	"testing"

	"entgo.io/ent"
	"github.com/stretchr/testify/assert"
)

func TestRatingRange(t *testing.T) {
	var rating ent.Field
	for _, f := range (FeedbackRating{}).Fields() {
		if f.Descriptor().Name == "rating" {
			rating = f
		}
	}
	if !assert.NotNil(t, rating) {
		return
	}
	validators := rating.Descriptor().Validators
	assert.NotEmpty(t, validators)
	check := validators[0].(func(int) error)
	assert.NoError(t, check(5))
	assert.Error(t, check(0))
	assert.Error(t, check(6))
}
