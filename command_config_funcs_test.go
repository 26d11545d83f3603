package botopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/types"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(
		WithName("ban"),
		WithAliases("b", "kickban"),
		WithCommandDescription("ban a member"),
		WithArgument("target", NewArg(WithType(types.User))),
		WithArgument("reason", NewArg(SetRequired(false), WithRest(true))))

	assert.Equal(t, "ban", cmd.Name)
	assert.Equal(t, []string{"ban", "b", "kickban"}, cmd.Names())
	assert.Equal(t, "ban a member", cmd.Description)
	assert.Equal(t, []string{"target", "reason"}, cmd.ArgumentNames())
	assert.Equal(t, "ban (b, kickban)", cmd.String())

	arg, ok := cmd.Argument("target")
	require.True(t, ok)
	assert.Equal(t, types.User, arg.TypeOf)
	_, ok = cmd.Argument("missing")
	assert.False(t, ok)
}

func TestCommand_Set(t *testing.T) {
	cmd := &Command{}
	cmd.Set(WithName("mute"), WithArgument("who", NewArg()))

	assert.Equal(t, "mute", cmd.String())
	assert.Equal(t, []string{"who"}, cmd.ArgumentNames())
}

func TestCommand_Schema(t *testing.T) {
	cmd := NewCommand(
		WithName("remind"),
		WithArgument("when", NewArg(WithType(types.Duration))),
		WithArgument("what", NewArg(SetRequired(false), WithRest(true))))

	s, err := cmd.Schema()
	require.NoError(t, err)
	assert.Equal(t, []string{"when", "what"}, s.Names())
	assert.True(t, s.At(0).Required())
	assert.False(t, s.At(1).Required())

	again, err := cmd.Schema()
	require.NoError(t, err)
	assert.Same(t, s, again, "the compiled schema is cached")

	cmd.AddArgument("loud", NewArg(WithType(types.Boolean), SetRequired(false)))
	changed, err := cmd.Schema()
	require.NoError(t, err)
	assert.NotSame(t, s, changed)
	assert.Equal(t, 3, changed.Len())
}

func TestCommand_SchemaErrors(t *testing.T) {
	cmd := NewCommand(
		WithName("bad"),
		WithArgument("rest", NewArg(WithRest(true))),
		WithArgument("after", NewArg()))

	_, err := cmd.Schema()
	assert.True(t, errors.Is(err, errs.ErrInvalidSchema))
	assert.True(t, errors.Is(err, errs.ErrMisplacedRest))

	cmd = NewCommand(WithName("nil"), WithArgument("x", nil))
	_, err = cmd.Schema()
	assert.True(t, errors.Is(err, errs.ErrInvalidSchema))
}

func TestCommand_ReplaceArgumentKeepsPosition(t *testing.T) {
	cmd := NewCommand(
		WithArgument("a", NewArg()),
		WithArgument("b", NewArg()),
		WithArgument("a", NewArg(WithType(types.Integer))))

	assert.Equal(t, []string{"a", "b"}, cmd.ArgumentNames())
	arg, _ := cmd.Argument("a")
	assert.Equal(t, types.Integer, arg.TypeOf)
}
