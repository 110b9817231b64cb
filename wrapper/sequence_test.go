package wrapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipeOrder(t *testing.T) {
	got := Pipe(mark("a"), mark("b"), mark("c"))(newTarget())
	assert.Equal(t, []string{"f", "a", "b", "c"}, got.Fn())
}

func TestPipeAssociativity(t *testing.T) {
	a, b, c := mark("a"), mark("b"), mark("c")

	flat := Pipe(a, b, c)(newTarget())
	leftNested := Pipe(Pipe(a, b), c)(newTarget())
	rightNested := Pipe(a, Pipe(b, c))(newTarget())

	assert.Equal(t, flat.Fn(), leftNested.Fn())
	assert.Equal(t, flat.Fn(), rightNested.Fn())
}

func TestComposeMirrorsPipe(t *testing.T) {
	a, b := mark("a"), mark("b")

	composed := Compose(a, b)(newTarget())
	piped := Pipe(b, a)(newTarget())

	assert.Equal(t, piped.Fn(), composed.Fn())
	assert.Equal(t, []string{"f", "b", "a"}, composed.Fn())
}

func TestEmptySequenceIsIdentity(t *testing.T) {
	target := newTarget()

	piped := Pipe[emit]()(target)
	composed := Compose[emit]()(target)

	assert.Equal(t, target.Fn(), piped.Fn())
	assert.Equal(t, target.Fn(), composed.Fn())
	assert.Equal(t, target.Name, piped.Name)
	assert.Equal(t, target.Name, composed.Name)
}

func TestComposeDoesNotMutateArguments(t *testing.T) {
	wrappers := []Wrapper[emit]{mark("a"), mark("b")}
	_ = Compose(wrappers...)(newTarget())

	got := Pipe(wrappers...)(newTarget())
	assert.Equal(t, []string{"f", "a", "b"}, got.Fn())
}

func TestSequenceKeepsMetadata(t *testing.T) {
	target := newTarget()

	piped := Pipe(mark("a"), mark("b"))(target)
	composed := Compose(mark("a"), mark("b"))(target)

	assert.Equal(t, "f", piped.Name)
	assert.Equal(t, "emits f", piped.Doc)
	assert.Equal(t, "f", composed.Name)
	assert.Equal(t, "emits f", composed.Doc)
}
