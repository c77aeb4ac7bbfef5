package nonempty_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/calvinalkan/configdirs/pkg/nonempty"
)

// Generated-input checks for the construction and conversion laws.

func Test_TryFrom_Keeps_First_Element_And_Order_When_Input_Is_Generated(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("head is items[0] and Slice round-trips", prop.ForAll(
		func(head int, tail []int) bool {
			items := append([]int{head}, tail...)

			s, err := nonempty.TryFrom(items)
			if err != nil {
				return false
			}

			return s.Head() == items[0] && slices.Equal(s.Slice(), items) && s.Len() == len(items)
		},
		gen.Int(),
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func Test_Of_Prepends_Head_To_Tail_When_Input_Is_Generated(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("Of(h, t...) is [h]+t", prop.ForAll(
		func(head string, tail []string) bool {
			s := nonempty.Of(head, tail...)

			want := append([]string{head}, tail...)

			return s.Head() == head && slices.Equal(s.Slice(), want) && slices.Equal(s.Tail(), tail)
		},
		gen.AnyString(),
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}

func Test_TryFrom_Of_Slice_Equals_Original_When_Input_Is_Generated(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("TryFrom(x.Slice()) == x", prop.ForAll(
		func(head string, tail []string) bool {
			original := nonempty.Of(head, tail...)

			again, err := nonempty.TryFrom(original.Slice())
			if err != nil {
				return false
			}

			return nonempty.Equal(original, again)
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
