package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"card-space/internal/database"
	"card-space/internal/model"
	"card-space/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/* ---------- 假實作 ---------- */

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newIDCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func usersDB(col *database.FakeCollection) *database.FakeDB {
	return &database.FakeDB{UsersFn: func() database.Collection { return col }}
}

func singleResult(doc interface{}, err error) *mongo.SingleResult {
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

/* ---------- 完整測試 ---------- */

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request payload")
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, `{"name":"a"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("email already registered", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			CountDocumentsFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
				require.Equal(t, "alice@example.com", filter.(bson.M)["email"])
				return 1, nil
			},
		})
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"Alice@Example.com","password":"Secret123!"}`)
		require.NoError(t, RegisterHandler(db)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "user already registered")
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		var inserted *model.User
		db := usersDB(&database.FakeCollection{
			CountDocumentsFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
				return 0, nil
			},
			InsertOneFn: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				inserted = document.(*model.User)
				return &mongo.InsertOneResult{InsertedID: inserted.ID}, nil
			},
		})
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"Alice@Example.com","password":"Secret123!","isBusiness":true}`)
		require.NoError(t, RegisterHandler(db)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)

		// Email 轉小寫，密碼以 bcrypt 儲存
		require.Equal(t, "alice@example.com", inserted.Email)
		require.NotEqual(t, "Secret123!", inserted.PasswordHash)
		require.NoError(t, service.ComparePassword(inserted.PasswordHash, "Secret123!"))

		// 回應不得包含密碼
		require.NotContains(t, rec.Body.String(), "password")
		require.NotContains(t, rec.Body.String(), inserted.PasswordHash)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "alice@example.com", resp["email"])
		require.Equal(t, true, resp["isBusiness"])
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := service.HashPassword("Secret123!")
	require.NoError(t, err)
	stored := &model.User{
		ID:           primitive.NewObjectID(),
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	t.Run("bind error", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, `{"email":"bad"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				return singleResult(nil, mongo.ErrNoDocuments)
			},
		})
		ctx, rec := newJSONCtx(e, `{"email":"nobody@example.com","password":"Secret123!"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				return singleResult(stored, nil)
			},
		})
		ctx, rec := newJSONCtx(e, `{"email":"alice@example.com","password":"wrong"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		// 與未知 Email 的回應一致
		require.Contains(t, rec.Body.String(), "invalid email or password")
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				require.Equal(t, "alice@example.com", filter.(bson.M)["email"])
				return singleResult(stored, nil)
			},
		})
		ctx, rec := newJSONCtx(e, `{"email":"Alice@Example.com","password":"Secret123!"}`)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp["token"])

		claims, err := service.VerifyAccessToken(resp["token"])
		require.NoError(t, err)
		require.Equal(t, stored.ID.Hex(), claims.UserID)
	})
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
				return nil, errors.New("find failed")
			},
		})
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		docs := []interface{}{
			model.User{ID: primitive.NewObjectID(), Name: "Alice", PasswordHash: "hash1"},
			model.User{ID: primitive.NewObjectID(), Name: "Bob", PasswordHash: "hash2"},
		}
		db := usersDB(&database.FakeCollection{
			FindFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
				return mongo.NewCursorFromDocuments(docs, nil, nil)
			},
		})
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")
		require.NotContains(t, rec.Body.String(), "hash1")
	})
}

func TestGetUserHandler(t *testing.T) {
	e := echo.New()
	userID := primitive.NewObjectID()

	t.Run("invalid id", func(t *testing.T) {
		ctx, rec := newIDCtx(e, http.MethodGet, "not-hex", "")
		require.NoError(t, GetUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid user id")
	})

	t.Run("not found", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				return singleResult(nil, mongo.ErrNoDocuments)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodGet, userID.Hex(), "")
		require.NoError(t, GetUserHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("store error", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				return singleResult(nil, errors.New("boom"))
			},
		})
		ctx, rec := newIDCtx(e, http.MethodGet, userID.Hex(), "")
		require.NoError(t, GetUserHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				require.Equal(t, userID, filter.(bson.M)["_id"])
				return singleResult(&model.User{ID: userID, Name: "Alice"}, nil)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodGet, userID.Hex(), "")
		require.NoError(t, GetUserHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	e := echo.New()
	userID := primitive.NewObjectID()
	body := `{"name":"Alice","email":"Alice@Example.com","isBusiness":true}`

	t.Run("invalid id", func(t *testing.T) {
		e.Validator = &stubValidator{}
		ctx, rec := newIDCtx(e, http.MethodPut, "not-hex", body)
		require.NoError(t, UpdateUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			CountDocumentsFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
				f := filter.(bson.M)
				require.Equal(t, "alice@example.com", f["email"])
				require.Equal(t, bson.M{"$ne": userID}, f["_id"])
				return 1, nil
			},
		})
		ctx, rec := newIDCtx(e, http.MethodPut, userID.Hex(), body)
		require.NoError(t, UpdateUserHandler(db)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "there is already a user with this email")
	})

	t.Run("not found", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			CountDocumentsFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
				return 0, nil
			},
			FindOneAndUpdateFn: func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
				return singleResult(nil, mongo.ErrNoDocuments)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodPut, userID.Hex(), body)
		require.NoError(t, UpdateUserHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			CountDocumentsFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
				return 0, nil
			},
			FindOneAndUpdateFn: func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
				set := update.(bson.M)["$set"].(bson.M)
				require.Equal(t, "alice@example.com", set["email"])
				require.NotContains(t, set, "password")
				return singleResult(&model.User{ID: userID, Name: "Alice", Email: "alice@example.com", IsBusiness: true}, nil)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodPut, userID.Hex(), body)
		require.NoError(t, UpdateUserHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "alice@example.com")
	})
}

func TestSetBusinessHandler(t *testing.T) {
	e := echo.New()
	userID := primitive.NewObjectID()

	t.Run("missing isBusiness", func(t *testing.T) {
		e.Validator = &stubValidator{err: errors.New("required")}
		ctx, rec := newIDCtx(e, http.MethodPatch, userID.Hex(), `{}`)
		require.NoError(t, SetBusinessHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `\"isBusiness\" must exist and be of type \"boolean\"`)
	})

	t.Run("success", func(t *testing.T) {
		e.Validator = &stubValidator{}
		db := usersDB(&database.FakeCollection{
			FindOneAndUpdateFn: func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
				require.Equal(t, bson.M{"$set": bson.M{"isBusiness": false}}, update)
				return singleResult(&model.User{ID: userID, IsBusiness: false}, nil)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodPatch, userID.Hex(), `{"isBusiness":false}`)
		require.NoError(t, SetBusinessHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()
	userID := primitive.NewObjectID()

	t.Run("not found", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindOneAndDeleteFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult {
				return singleResult(nil, mongo.ErrNoDocuments)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodDelete, userID.Hex(), "")
		require.NoError(t, DeleteUserHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "the user does not exist")
	})

	t.Run("success", func(t *testing.T) {
		db := usersDB(&database.FakeCollection{
			FindOneAndDeleteFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult {
				require.Equal(t, bson.M{"_id": userID}, filter)
				return singleResult(&model.User{ID: userID, Name: "Alice"}, nil)
			},
		})
		ctx, rec := newIDCtx(e, http.MethodDelete, userID.Hex(), "")
		require.NoError(t, DeleteUserHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Alice")
	})
}
