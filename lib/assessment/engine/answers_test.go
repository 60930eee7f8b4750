package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(""))
	assert.False(t, IsTruthy(false))
	assert.False(t, IsTruthy(float64(0)))
	assert.False(t, IsTruthy(0))

	assert.True(t, IsTruthy("yes"))
	assert.True(t, IsTruthy(true))
	assert.True(t, IsTruthy(float64(3)))
	// пустой массив считается наличием значения
	assert.True(t, IsTruthy([]interface{}{}))
	assert.True(t, IsTruthy(map[string]interface{}{}))
}

func TestIsAnswered(t *testing.T) {
	assert.False(t, IsAnswered(nil))
	assert.False(t, IsAnswered(""))
	assert.False(t, IsAnswered("   "))
	// пустой массив truthy, но строковое представление пустое
	assert.False(t, IsAnswered([]interface{}{}))

	assert.True(t, IsAnswered("a"))
	assert.True(t, IsAnswered([]interface{}{"a", "b"}))
	assert.True(t, IsAnswered(float64(5)))
	assert.True(t, IsAnswered(map[string]interface{}{"name": "cv.pdf"}))
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "", AnswerString(nil))
	assert.Equal(t, "go", AnswerString("go"))
	assert.Equal(t, "a,b", AnswerString([]interface{}{"a", "b"}))
	assert.Equal(t, "cv.pdf", AnswerString(map[string]interface{}{"name": "cv.pdf", "size": float64(100)}))
	assert.Equal(t, "3.5", AnswerString(float64(3.5)))
	assert.Equal(t, "42", AnswerString(float64(42)))
	assert.Equal(t, "true", AnswerString(true))
}
