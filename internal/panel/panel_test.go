package panel

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/at-ishikawa/yesno/internal/answer"
	mock_answer "github.com/at-ishikawa/yesno/internal/mocks/answer"
	"github.com/at-ishikawa/yesno/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(mock_answer.NewMockClient(ctrl))

	assert.Equal(t, State{}, p.State())
}

func TestPanel_RequestNextAnswer(t *testing.T) {
	previous := answer.Record{Answer: "no", Forced: true, Image: "https://x/0.gif"}

	tests := []struct {
		name       string
		initial    State
		fetchValue answer.Record
		fetchErr   error

		want    State
		wantErr bool
	}{
		{
			name:       "Success increments the count and clears the previous error",
			initial:    State{Error: "stale", Count: 3},
			fetchValue: answer.Record{Answer: "yes", Image: "https://x/1.gif"},
			want: State{
				Record: &answer.Record{Answer: "yes", Image: "https://x/1.gif"},
				Count:  4,
			},
		},
		{
			name:     "Status failure keeps the previous record and count",
			initial:  State{Record: &previous, Count: 1},
			fetchErr: &answer.StatusError{StatusCode: http.StatusBadGateway},
			want: State{
				Record: &previous,
				Error:  answer.FetchFailedMessage,
				Count:  1,
			},
			wantErr: true,
		},
		{
			name:     "Transport failure shows the underlying message",
			initial:  State{},
			fetchErr: &answer.TransportError{Err: errors.New("connection refused")},
			want: State{
				Error: "connection refused",
			},
			wantErr: true,
		},
		{
			name:     "Failure without a message falls back to the generic message",
			initial:  State{Count: 2},
			fetchErr: errors.New(""),
			want: State{
				Error: GenericErrorMessage,
				Count: 2,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_answer.NewMockClient(ctrl)
			p := New(client)
			p.state = tt.initial

			client.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (answer.Record, error) {
				state := p.State()
				assert.True(t, state.Loading, "loading must be set while the request is in flight")
				assert.Empty(t, state.Error, "error must be cleared before the request is issued")
				return tt.fetchValue, tt.fetchErr
			})

			err := p.RequestNextAnswer(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.fetchErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, p.State())
		})
	}
}

func TestPanel_RequestNextAnswer_ReleasesLoadingOnPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_answer.NewMockClient(ctrl)
	p := New(client)

	client.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (answer.Record, error) {
		panic("boom")
	})

	assert.Panics(t, func() {
		_ = p.RequestNextAnswer(context.Background())
	})
	state := p.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Record)
	assert.Equal(t, 0, state.Count)
}

func TestPanel_BeginSettle(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(mock_answer.NewMockClient(ctrl))

	p.Begin()
	assert.Equal(t, State{Loading: true}, p.State())
	assert.Equal(t, TriggerLoading, Render(p.State()).Trigger.Label)

	p.Settle(answer.Record{Answer: "no"}, nil)
	assert.Equal(t, State{Record: &answer.Record{Answer: "no"}, Count: 1}, p.State())

	p.Begin()
	p.Settle(answer.Record{}, &answer.StatusError{StatusCode: http.StatusInternalServerError})
	assert.Equal(t, State{Record: &answer.Record{Answer: "no"}, Error: answer.FetchFailedMessage, Count: 1}, p.State())
}

func TestPanel_State_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := New(mock_answer.NewMockClient(ctrl))
	p.Settle(answer.Record{Answer: "yes"}, nil)

	state := p.State()
	state.Record.Answer = "no"
	state.Count = 10

	assert.Equal(t, "yes", p.State().Record.Answer)
	assert.Equal(t, 1, p.State().Count)
}

func TestPanel_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		responses []testutil.Response

		wantAnswer  string
		wantRecord  bool
		wantVariant answer.Variant
		wantForced  string
		wantCount   int
		wantError   string
		wantAnyErr  bool
	}{
		{
			name: "A: affirmative answer",
			responses: []testutil.Response{
				{StatusCode: http.StatusOK, Body: `{"answer":"Yes","forced":false,"image":"https://x/1.gif"}`},
			},
			wantAnswer:  "Yes",
			wantRecord:  true,
			wantVariant: answer.VariantAffirmative,
			wantForced:  "No",
			wantCount:   1,
		},
		{
			name: "B: server error",
			responses: []testutil.Response{
				{StatusCode: http.StatusInternalServerError, Body: `{}`},
			},
			wantCount: 0,
			wantError: "Failed to fetch data",
		},
		{
			name: "C: unparseable body",
			responses: []testutil.Response{
				{StatusCode: http.StatusOK, Body: `<html>not json</html>`},
			},
			wantCount:  0,
			wantAnyErr: true,
		},
		{
			name: "D: second answer replaces the first",
			responses: []testutil.Response{
				{StatusCode: http.StatusOK, Body: `{"answer":"yes","forced":false,"image":"https://x/1.gif"}`},
				{StatusCode: http.StatusOK, Body: `{"answer":"no","forced":true,"image":"https://x/2.gif"}`},
			},
			wantAnswer:  "no",
			wantRecord:  true,
			wantVariant: answer.VariantNegative,
			wantForced:  "Yes",
			wantCount:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewAnswerServer(t, tt.responses...)

			client := answer.NewHTTPClient(server.URL, "")
			defer func() {
				_ = client.Close()
			}()
			p := New(client)

			for range tt.responses {
				_ = p.RequestNextAnswer(context.Background())
				assert.False(t, p.State().Loading)
			}
			assert.Equal(t, len(tt.responses), server.Calls())

			state := p.State()
			assert.Equal(t, tt.wantCount, state.Count)
			switch {
			case tt.wantError != "":
				assert.Equal(t, tt.wantError, state.Error)
			case tt.wantAnyErr:
				assert.NotEmpty(t, state.Error)
			default:
				assert.Empty(t, state.Error)
			}

			if !tt.wantRecord {
				assert.Nil(t, state.Record)
				return
			}
			require.NotNil(t, state.Record)
			assert.Equal(t, tt.wantAnswer, state.Record.Answer)

			view := Render(state)
			require.NotNil(t, view.Answer)
			assert.Equal(t, tt.wantVariant, view.Answer.Variant)
			assert.Equal(t, tt.wantForced, view.Answer.Forced)
			assert.Equal(t, tt.wantCount, view.Answer.RequestNumber)
		})
	}
}
