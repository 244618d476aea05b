package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmptyTransitionsIsError(t *testing.T) {
	_, err := Run([]string{"obsid"}, nil, nil, Dispatcher{}, "2099:365:00:00:00.000")
	var noTrans *NoTransitionsError
	require.ErrorAs(t, err, &noTrans)
}

func TestRunMergesSameDateTransitionsIntoOneRow(t *testing.T) {
	ts := []Transition{
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Key: "obsid", Value: Known(1.0)}}},
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Key: "simpos", Value: Known(100.0)}}},
		{Date: "2020:002:00:00:00.000", Entries: []Entry{{Key: "obsid", Value: Known(2.0)}}},
	}
	res, err := Run([]string{"obsid", "simpos"}, ts, nil, Dispatcher{}, "2099:365:00:00:00.000")
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"2020:001:00:00:00.000", "2020:002:00:00:00.000"}, res.Datestart)
	assert.Equal(t, []string{"2020:002:00:00:00.000", "2099:365:00:00:00.000"}, res.Datestop)

	row0 := res.Rows[0]
	assert.Equal(t, 1.0, row0["obsid"].Interface())
	assert.Equal(t, 100.0, row0["simpos"].Interface())

	row1 := res.Rows[1]
	assert.Equal(t, 2.0, row1["obsid"].Interface())
	assert.Equal(t, 100.0, row1["simpos"].Interface(), "unchanged keys carry forward")
}

func TestRunSeedsFromState0(t *testing.T) {
	state0 := State{"obsid": Known(99.0)}
	ts := []Transition{
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Key: "simpos", Value: Known(1.0)}}},
	}
	res, err := Run([]string{"obsid", "simpos"}, ts, state0, Dispatcher{}, "2099:365:00:00:00.000")
	require.NoError(t, err)
	assert.Equal(t, 99.0, res.Rows[0]["obsid"].Interface())
}

func TestRunDispatchesActionsAndCanAddTransition(t *testing.T) {
	const actionID ActionID = 100
	calls := 0
	d := Dispatcher{
		actionID: func(ctx *ActionContext) error {
			calls++
			return ctx.AddTransition(Transition{
				Date:    "2020:001:12:00:00.000",
				Entries: []Entry{{Key: "pitch", Value: Known(90.0)}},
			})
		},
	}
	ts := []Transition{
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Action: &ActionCall{ID: actionID}}}},
	}
	res, err := Run([]string{"pitch"}, ts, nil, d, "2099:365:00:00:00.000")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, res.Rows, 2)
	assert.False(t, res.Rows[0]["pitch"].IsKnown())
	assert.Equal(t, 90.0, res.Rows[1]["pitch"].Interface())
}

func TestRunPropagatesActionError(t *testing.T) {
	const actionID ActionID = 101
	d := Dispatcher{
		actionID: func(ctx *ActionContext) error {
			return ctx.AddTransition(Transition{Date: "2019:001:00:00:00.000"})
		},
	}
	ts := []Transition{
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Action: &ActionCall{ID: actionID}}}},
	}
	_, err := Run([]string{"pitch"}, ts, nil, d, "2099:365:00:00:00.000")
	var ov *OrderingViolation
	require.ErrorAs(t, err, &ov)
}

func TestRunSkipsUnregisteredAction(t *testing.T) {
	ts := []Transition{
		{Date: "2020:001:00:00:00.000", Entries: []Entry{{Action: &ActionCall{ID: ActionID(999)}}}},
	}
	res, err := Run([]string{"pitch"}, ts, nil, Dispatcher{}, "2099:365:00:00:00.000")
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)
}
