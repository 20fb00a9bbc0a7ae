package actor

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestOwnerValid(t *testing.T) {
	id := uuid.New()
	assert.True(t, UserOwner(id).Valid())
	assert.True(t, SellerOwner(id).Valid())
	assert.False(t, Owner{Kind: "store", ID: id}.Valid())
	assert.False(t, UserOwner(uuid.Nil).Valid())
}

func TestFromUser(t *testing.T) {
	sellerID := uuid.New()
	u := &models.User{ID: uuid.New(), Email: "a@x.com", Role: models.RoleSeller, SellerID: &sellerID}

	a := FromUser(u)

	assert.Equal(t, u.ID, a.UserID)
	assert.True(t, a.IsSeller())
	assert.False(t, a.IsAdmin())
	assert.True(t, a.CanAccessUser(u.ID))
	assert.False(t, a.CanAccessUser(uuid.New()))
}

func TestAdminCanAccessAnyUser(t *testing.T) {
	a := Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	assert.True(t, a.CanAccessUser(uuid.New()))
	assert.False(t, a.IsSeller())
}

func TestContextRoundTrip(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	_, err := Get(c)
	assert.ErrorIs(t, err, ErrNoActor)

	want := Actor{UserID: uuid.New(), Role: models.RoleUser}
	Set(c, want)
	got, err := Get(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubjectFromToken(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	_, err := SubjectFromToken(c)
	assert.Error(t, err)

	id := uuid.New()
	c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": id.String()}})
	got, err := SubjectFromToken(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
