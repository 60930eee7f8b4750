package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"talent-flow-backend/config"
	s3client "talent-flow-backend/s3"

	"github.com/google/uuid"
)

// Хранилище файлов-ответов на вопросы типа file-upload.
// Файл кладётся в S3 до отправки анкеты, в ответе кандидата сохраняется
// дескриптор со storageKey

type Provider interface {
	UploadAnswerFile(ctx context.Context, assessmentID, candidateID, fileName string, fileReader io.Reader, fileSize int64) (storageKey string, err error)
	GetFile(ctx context.Context, storageKey string) ([]byte, error)
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

func (i impl) UploadAnswerFile(ctx context.Context, assessmentID, candidateID, fileName string, fileReader io.Reader, fileSize int64) (string, error) {
	if i.s3client == nil {
		return "", errors.New("хранилище файлов не настроено")
	}
	storageKey := fmt.Sprintf("%s/%s/%s%s", assessmentID, candidateID, uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, storageKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return storageKey, nil
}

func (i impl) GetFile(ctx context.Context, storageKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("хранилище файлов не настроено")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, storageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, nil
}
