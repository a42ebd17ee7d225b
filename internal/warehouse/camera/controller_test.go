package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-console/internal/warehouse/builder"
	"warehouse-console/internal/warehouse/layout"
	"warehouse-console/internal/warehouse/models"
)

func newScene(codes ...string) *layout.Scene {
	records := make([]models.StockRecord, 0, len(codes))
	for _, code := range codes {
		records = append(records, models.StockRecord{LocationCode: code, ItemCode: "X", Quantity: 1})
	}
	return layout.NewScene(builder.Build(records), models.DefaultLayoutConfig())
}

func newController() *Controller {
	return New(newScene("A012", "A014", "A021", "B030", "B052"))
}

func TestSelection_Transitions(t *testing.T) {
	s := None()

	s = s.SelectShelf("A", 1)
	assert.Equal(t, ShelfSelection("A", 1), s)

	s = s.InspectBin("A012")
	assert.Equal(t, Selection{Kind: KindBin, Row: "A", Column: 1, SlotCode: "A012"}, s)

	s = s.ClearBin()
	assert.Equal(t, ShelfSelection("A", 1), s)

	s = s.SelectAisle("B")
	assert.Equal(t, AisleSelection("B"), s)

	assert.Equal(t, s, s.InspectBin("B030"), "inspect from aisle is a no-op")
	assert.Equal(t, None(), None().InspectBin("A012"))
	assert.Equal(t, None(), s.SelectAisle("B"))
	assert.Equal(t, None(), None().ClearBin())
}

func TestController_ShelfToggle(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	assert.Equal(t, ShelfSelection("A", 1), c.Selection())

	c.SelectShelf("A", 1, 100*time.Millisecond)
	assert.Equal(t, None(), c.Selection())
}

func TestController_AisleToggle(t *testing.T) {
	c := newController()

	c.SelectAisle("A", 0)
	c.SelectAisle("B", 0)
	assert.Equal(t, AisleSelection("B"), c.Selection())
	c.SelectAisle("B", 0)
	assert.Equal(t, None(), c.Selection())
}

func TestController_AisleClearsShelfAndBin(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	c.InspectBin("A012", 0)
	require.Equal(t, KindBin, c.Selection().Kind)

	c.SelectAisle("B", 0)
	assert.Equal(t, AisleSelection("B"), c.Selection())
}

func TestController_SelectShelfFromBinOfSameShelfTogglesOff(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	c.InspectBin("A013", 0)
	c.SelectShelf("A", 1, 0)
	assert.Equal(t, None(), c.Selection())
}

func TestController_SelectOtherShelfClearsBin(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	c.InspectBin("A013", 0)
	c.SelectShelf("A", 2, 0)
	assert.Equal(t, ShelfSelection("A", 2), c.Selection())
}

func TestController_InspectBinPreconditions(t *testing.T) {
	c := newController()

	c.InspectBin("A012", 0)
	assert.Equal(t, None(), c.Selection(), "no shelf selected")

	c.SelectAisle("A", 0)
	c.InspectBin("A012", 0)
	assert.Equal(t, AisleSelection("A"), c.Selection())

	c.SelectShelf("A", 1, 0)
	c.InspectBin("B030", 0)
	assert.Equal(t, ShelfSelection("A", 1), c.Selection(), "bin from another shelf")
	c.InspectBin("A099", 0)
	assert.Equal(t, ShelfSelection("A", 1), c.Selection(), "unknown bin")

	c.InspectBin("A010", 0)
	assert.Equal(t, "A010", c.Selection().SlotCode)
	c.InspectBin("A014", 0)
	assert.Equal(t, "A014", c.Selection().SlotCode)
	assert.Equal(t, 1, c.Selection().Column)
}

func TestController_UnknownTargetsFrameOverview(t *testing.T) {
	c := New(newScene("A012", "A014"), WithDuration(time.Second))

	c.SelectShelf("A", 1, 0)
	c.InspectBin("A012", 0)
	require.Equal(t, KindBin, c.Selection().Kind)

	at := 2 * time.Second
	assert.Equal(t, AisleSelection("B"), c.SelectAisle("B", at))
	assert.Equal(t, c.Scene().Overview, c.Animation().Target)
	assert.True(t, c.Animating(at))
	assert.Equal(t, c.Scene().Overview, c.Tick(at+time.Second))

	assert.Equal(t, ShelfSelection("A", 9), c.SelectShelf("A", 9, at))
	assert.Equal(t, c.Scene().Overview, c.Animation().Target)

	// ряд так и не появился - пересборка сбрасывает выбор
	c.Rebuild(newScene("A012", "A014"), at)
	assert.Equal(t, None(), c.Selection())
}

func TestController_ClearFromAnyState(t *testing.T) {
	c := newController()

	c.SelectShelf("B", 5, 0)
	c.InspectBin("B052", 0)
	c.Clear(0)
	assert.Equal(t, None(), c.Selection())
}

func TestController_InitialPoseIsOverview(t *testing.T) {
	c := newController()
	assert.Equal(t, c.Scene().Overview, c.Pose())
	assert.Equal(t, c.Scene().Overview, c.Tick(5*time.Second))
	assert.False(t, c.Animating(0))
}

func TestController_AnimationConvergence(t *testing.T) {
	c := newController()
	start := c.Tick(0)

	at := 2 * time.Second
	c.SelectShelf("A", 1, at)
	shelf, ok := c.Scene().Shelf("A", 1)
	require.True(t, ok)
	target := layout.FocusPose(shelf)

	assert.Equal(t, start, c.Tick(at))
	assert.True(t, c.Animating(at+time.Millisecond))

	mid := c.Tick(at + DefaultDuration/2)
	assert.NotEqual(t, start, mid)
	assert.NotEqual(t, target, mid)

	assert.Equal(t, target, c.Tick(at+DefaultDuration))
	assert.Equal(t, target, c.Tick(at+10*DefaultDuration))
	assert.False(t, c.Animating(at+DefaultDuration))
}

func TestController_ReentrantAnimationStartsFromCurrentPose(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	midway := 300 * time.Millisecond
	expected := c.Animation().At(midway)

	c.SelectShelf("B", 3, midway)
	assert.Equal(t, expected, c.Animation().Start)
	assert.Equal(t, expected, c.Tick(midway), "no jump on mid-flight change")

	shelf, _ := c.Scene().Shelf("B", 3)
	assert.Equal(t, layout.FocusPose(shelf), c.Animation().Target)
}

func TestController_BinInspectionDoesNotMoveCamera(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	anim := c.Animation()

	c.InspectBin("A012", 500*time.Millisecond)
	c.ClearBin(600 * time.Millisecond)
	assert.Equal(t, anim, c.Animation())
}

func TestController_ToggleOffReturnsToOverview(t *testing.T) {
	c := newController()

	c.SelectAisle("A", 0)
	c.SelectAisle("A", 2*time.Second)
	assert.Equal(t, c.Scene().Overview, c.Animation().Target)
	assert.Equal(t, c.Scene().Overview, c.Tick(2*time.Second+DefaultDuration))
}

func TestController_WithDuration(t *testing.T) {
	c := New(newScene("A010"), WithDuration(0))

	c.SelectShelf("A", 1, time.Second)
	shelf, _ := c.Scene().Shelf("A", 1)
	assert.Equal(t, layout.FocusPose(shelf), c.Tick(time.Second))
}

func TestController_RebuildKeepsValidSelection(t *testing.T) {
	c := newController()

	c.SelectShelf("A", 1, 0)
	anim := c.Animation()

	c.Rebuild(newScene("A013", "C010"), 100*time.Millisecond)
	assert.Equal(t, ShelfSelection("A", 1), c.Selection())
	assert.Equal(t, anim, c.Animation(), "in-flight animation untouched")
}

func TestController_RebuildDropsDanglingSelection(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		scene *layout.Scene
	}{
		{
			name:  "aisle removed",
			setup: func(c *Controller) { c.SelectAisle("B", 0) },
			scene: newScene("A012"),
		},
		{
			name:  "shelf removed",
			setup: func(c *Controller) { c.SelectShelf("A", 2, 0) },
			scene: newScene("A012", "B030"),
		},
		{
			name: "bin removed",
			setup: func(c *Controller) {
				c.SelectShelf("A", 1, 0)
				c.InspectBin("A014", 0)
			},
			scene: newScene("A012"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController()
			tt.setup(c)

			now := 400 * time.Millisecond
			before := c.Animation().At(now)

			c.Rebuild(tt.scene, now)
			assert.Equal(t, None(), c.Selection())
			assert.Equal(t, before, c.Animation().Start)
			assert.Equal(t, tt.scene.Overview, c.Animation().Target)
			assert.Equal(t, tt.scene.Overview, c.Tick(now+DefaultDuration))
		})
	}
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{KindNone, KindAisle, KindShelf, KindBin} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("rack")))
}
