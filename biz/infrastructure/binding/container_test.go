package binding

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"dsbind/biz/infrastructure/consts"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountMapper interface {
	Balance(id int64) (int64, error)
}

type auditMapper interface {
	Append(entry string) error
}

type notAMapper struct{}

var (
	accountMapperType = reflect.TypeOf((*accountMapper)(nil)).Elem()
	auditMapperType   = reflect.TypeOf((*auditMapper)(nil)).Elem()
)

func TestContainer_DataSourceProvider(t *testing.T) {
	t.Parallel()

	t.Run("Unbound", func(t *testing.T) {
		c := NewContainer()
		_, err := c.DataSource()
		assert.ErrorIs(t, err, consts.ErrNotBound)
	})

	t.Run("BindOnce", func(t *testing.T) {
		c := NewContainer()
		handle := new(sql.DB)
		require.NoError(t, c.BindDataSourceProvider(func() *sql.DB { return handle }))

		db, err := c.DataSource()
		require.NoError(t, err)
		assert.Same(t, handle, db)

		err = c.BindDataSourceProvider(func() *sql.DB { return nil })
		assert.ErrorIs(t, err, consts.ErrAlreadyBound)
	})

	t.Run("NilProvider", func(t *testing.T) {
		c := NewContainer()
		assert.ErrorIs(t, c.BindDataSourceProvider(nil), consts.ErrInvalidArgument)
	})
}

func TestContainer_TransactionFactory(t *testing.T) {
	t.Parallel()

	c := NewContainer()
	_, err := c.TransactionFactory()
	require.ErrorIs(t, err, consts.ErrNotBound)

	require.NoError(t, c.BindTransactionFactoryType(JdbcTransactionFactory{}))
	f, err := c.TransactionFactory()
	require.NoError(t, err)
	assert.IsType(t, JdbcTransactionFactory{}, f)

	assert.ErrorIs(t, c.BindTransactionFactoryType(JdbcTransactionFactory{}), consts.ErrAlreadyBound)
	assert.ErrorIs(t, NewContainer().BindTransactionFactoryType(nil), consts.ErrInvalidArgument)
}

func TestJdbcTransactionFactory_AutoCommit(t *testing.T) {
	t.Parallel()

	tx, err := JdbcTransactionFactory{}.NewTransaction(context.Background(), nil, true)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestJdbcTransactionFactory_Begin(t *testing.T) {
	t.Parallel()

	t.Run("CommitOnHostConnection", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		tx, err := JdbcTransactionFactory{}.NewTransaction(context.Background(), db, false)
		require.NoError(t, err)
		require.NotNil(t, tx)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		cause := errors.New("too many connections")
		mock.ExpectBegin().WillReturnError(cause)

		_, err = JdbcTransactionFactory{}.NewTransaction(context.Background(), db, false)
		assert.ErrorIs(t, err, cause)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContainer_AddMapperTypes(t *testing.T) {
	t.Parallel()

	t.Run("KeepsOrder", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.AddMapperTypes([]reflect.Type{auditMapperType, accountMapperType}))
		assert.Equal(t, []reflect.Type{auditMapperType, accountMapperType}, c.MapperTypes())
		assert.True(t, c.HasMapper(accountMapperType))
	})

	t.Run("SkipsNonInterface", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.AddMapperTypes([]reflect.Type{reflect.TypeOf(notAMapper{}), accountMapperType}))
		assert.Equal(t, []reflect.Type{accountMapperType}, c.MapperTypes())
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		c := NewContainer()
		err := c.AddMapperTypes([]reflect.Type{accountMapperType, accountMapperType})
		assert.ErrorIs(t, err, consts.ErrMapperKnown)
		assert.Equal(t, []reflect.Type{accountMapperType}, c.MapperTypes())
	})

	t.Run("NilType", func(t *testing.T) {
		c := NewContainer()
		assert.ErrorIs(t, c.AddMapperTypes([]reflect.Type{nil}), consts.ErrInvalidArgument)
	})

	t.Run("MapperTypesReturnsCopy", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.AddMapperTypes([]reflect.Type{accountMapperType}))
		got := c.MapperTypes()
		got[0] = auditMapperType
		assert.Equal(t, []reflect.Type{accountMapperType}, c.MapperTypes())
	})
}

func TestContainer_Properties(t *testing.T) {
	t.Parallel()

	c := NewContainer()
	require.NoError(t, c.BindProperties(map[string]string{
		consts.EnvironmentIDKey: "env-1",
		consts.AutoCommitKey:    "false",
	}))
	require.NoError(t, c.BindProperties(map[string]string{
		consts.EnvironmentIDKey: "env-2",
		"pool.size":             "8",
	}))

	v, ok := c.Property(consts.EnvironmentIDKey)
	require.True(t, ok)
	assert.Equal(t, "env-2", v)

	_, ok = c.Property("missing")
	assert.False(t, ok)

	autoCommit, err := c.BoolProperty(consts.AutoCommitKey)
	require.NoError(t, err)
	assert.False(t, autoCommit)

	_, err = c.BoolProperty("missing")
	assert.ErrorIs(t, err, consts.ErrNotBound)

	var settings Settings
	require.NoError(t, c.DecodeProperties(&settings))
	assert.Equal(t, Settings{EnvironmentID: "env-2", AutoCommit: false}, settings)

	props := c.Properties()
	props["pool.size"] = "1"
	v, _ = c.Property("pool.size")
	assert.Equal(t, "8", v)
}
