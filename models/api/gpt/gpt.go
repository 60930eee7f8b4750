package gptmodels

import "github.com/pkg/errors"

type GenJobDescRequest struct {
	Text string `json:"text"` // вводные данные по вакансии в свободной форме
}

func (r GenJobDescRequest) Validate() error {
	if r.Text == "" {
		return errors.New("не указаны вводные данные для генерации")
	}
	return nil
}

type GenJobDescResponse struct {
	Description string `json:"description"`
}
