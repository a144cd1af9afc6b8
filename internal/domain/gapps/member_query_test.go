package gapps_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain"
	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

const memberRoot = gapps.DefaultBaseFeedURI + gapps.DefaultGroupPath

func none() gapps.Optional[string] { return gapps.None[string]() }

func TestMemberQuery_QueryURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		domain        gapps.Optional[string]
		groupID       gapps.Optional[string]
		memberID      gapps.Optional[string]
		startMemberID gapps.Optional[string]
		want          string
	}{
		{
			name:    "group members",
			domain:  gapps.Some("example.com"),
			groupID: gapps.Some("sales"),
			want:    memberRoot + "/example.com/sales/member",
		},
		{
			name:     "single member",
			domain:   gapps.Some("example.com"),
			groupID:  gapps.Some("sales"),
			memberID: gapps.Some("jsmith"),
			want:     memberRoot + "/example.com/sales/member/jsmith",
		},
		{
			name:          "start cursor",
			domain:        gapps.Some("example.com"),
			groupID:       gapps.Some("sales"),
			startMemberID: gapps.Some("abc"),
			want:          memberRoot + "/example.com/sales/member?start=abc",
		},
		{
			name:          "member and cursor",
			domain:        gapps.Some("example.com"),
			groupID:       gapps.Some("sales"),
			memberID:      gapps.Some("jsmith"),
			startMemberID: gapps.Some("abc"),
			want:          memberRoot + "/example.com/sales/member/jsmith?start=abc",
		},
		{
			name:          "cursor is form encoded",
			domain:        gapps.Some("example.com"),
			groupID:       gapps.Some("sales"),
			startMemberID: gapps.Some("a b&c@example.com"),
			want:          memberRoot + "/example.com/sales/member?start=a+b%26c%40example.com",
		},
		{
			name:    "unset domain renders empty segment",
			groupID: gapps.Some("sales"),
			want:    memberRoot + "//sales/member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := gapps.NewMemberQuery(gapps.DefaultEndpoint, tt.domain, tt.groupID, tt.memberID, tt.startMemberID)
			got, err := q.QueryURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemberQuery_QueryURL_MissingGroupID(t *testing.T) {
	t.Parallel()

	q := gapps.NewMemberQuery(gapps.DefaultEndpoint,
		gapps.Some("example.com"), none(), gapps.Some("jsmith"), gapps.Some("abc"))

	got, err := q.QueryURL()
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "groupId must not be null", err.Error())
	assert.True(t, errors.Is(err, domain.ErrMissingRequiredField))
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var mferr *domain.MissingFieldError
	require.ErrorAs(t, err, &mferr)
	assert.Equal(t, "groupId", mferr.Field)
}

func TestMemberQuery_StartMemberID(t *testing.T) {
	t.Parallel()

	q := gapps.NewMemberQuery(gapps.DefaultEndpoint, gapps.Some("example.com"), gapps.Some("sales"), none(), none())
	assert.False(t, q.StartMemberID().IsSet())

	q.SetStartMemberID(gapps.Some("5"))
	got, ok := q.StartMemberID().Get()
	require.True(t, ok)
	assert.Equal(t, "5", got)

	q.SetStartMemberID(none())
	assert.False(t, q.StartMemberID().IsSet())
	assert.Equal(t, 0, q.Params().Len(), "start key should be removed, not stored empty")

	u, err := q.QueryURL()
	require.NoError(t, err)
	assert.NotContains(t, u, "start")
	assert.NotContains(t, u, "?")
}

func TestMemberQuery_Accessors(t *testing.T) {
	t.Parallel()

	q := gapps.NewMemberQuery(gapps.DefaultEndpoint, none(), none(), none(), none())
	assert.False(t, q.GroupID().IsSet())
	assert.False(t, q.MemberID().IsSet())
	assert.False(t, q.Domain().IsSet())

	q.SetGroupID(gapps.Some("sales"))
	q.SetMemberID(gapps.Some("jsmith"))
	q.SetDomain(gapps.Some("example.com"))
	assert.Equal(t, "sales", q.GroupID().OrElse(""))
	assert.Equal(t, "jsmith", q.MemberID().OrElse(""))
	assert.Equal(t, "example.com", q.Domain().OrElse(""))

	q.SetGroupID(none())
	q.SetMemberID(none())
	assert.False(t, q.GroupID().IsSet())
	assert.False(t, q.MemberID().IsSet())
}

func TestMemberQuery_HistoryIndependent(t *testing.T) {
	t.Parallel()

	direct := gapps.NewMemberQuery(gapps.DefaultEndpoint,
		gapps.Some("example.com"), gapps.Some("sales"), gapps.Some("jsmith"), gapps.Some("abc"))

	churned := gapps.NewMemberQuery(gapps.DefaultEndpoint, none(), none(), none(), none())
	churned.SetStartMemberID(gapps.Some("zzz"))
	churned.SetMemberID(gapps.Some("other"))
	churned.SetGroupID(gapps.Some("eng"))
	churned.SetStartMemberID(none())
	churned.SetDomain(gapps.Some("example.com"))
	churned.SetMemberID(gapps.Some("jsmith"))
	churned.SetStartMemberID(gapps.Some("abc"))
	churned.SetGroupID(gapps.Some("sales"))

	want, err := direct.QueryURL()
	require.NoError(t, err)
	got, err := churned.QueryURL()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	again, err := churned.QueryURL()
	require.NoError(t, err)
	assert.Equal(t, got, again, "QueryURL must not mutate the builder")
}

func TestMemberQuery_CustomEndpoint(t *testing.T) {
	t.Parallel()

	ep := gapps.Endpoint{BaseFeedURI: "http://localhost:9000/a/feeds", GroupPath: "/group/2.0"}
	q := gapps.NewMemberQuery(ep, gapps.Some("example.com"), gapps.Some("sales"), none(), none())

	got, err := q.QueryURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/a/feeds/group/2.0/example.com/sales/member", got)
}
