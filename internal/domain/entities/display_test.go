package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationshipColor(t *testing.T) {
	assert.Equal(t, "#4caf50", RelationshipColor(RelationAlly))
	assert.Equal(t, "#f44336", RelationshipColor(RelationEnemy))

	// Unknown types fall back to the neutral color.
	assert.Equal(t, RelationshipColor(RelationNeutral), RelationshipColor("no-such-type"))
}

func TestEntityShape(t *testing.T) {
	assert.Equal(t, "ellipse", EntityShape(KindCharacter))
	assert.Equal(t, "box", EntityShape(KindLocation))
	assert.Equal(t, "star", EntityShape(KindMagicSystem))

	// Unknown kinds fall back to ellipse.
	assert.Equal(t, "ellipse", EntityShape("no-such-kind"))
}
