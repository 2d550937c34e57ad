package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/adapter/handler"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/validation"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/listing"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/metadata"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/sign"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/transform"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/upload"
)

const (
	testMinioImage = "minio/minio:RELEASE.2024-01-16T16-07-38Z"
	testBucket     = "images"
	testRegion     = "us-east-1"
	testAPIKey     = "test-api-key-for-e2e-tests"
	testMaxSize    = 30 * 1024 * 1024
)

type TestApp struct {
	Server     *httptest.Server
	Container  *minio.MinioContainer
	S3         *s3.Client
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	minioContainer, err := minio.Run(ctx, testMinioImage)
	require.NoError(t, err)

	endpoint, err := minioContainer.ConnectionString(ctx)
	require.NoError(t, err)

	s3Cfg := config.S3Config{
		Endpoint:        "http://" + endpoint,
		Region:          testRegion,
		Bucket:          testBucket,
		AccessKeyID:     minioContainer.Username,
		SecretAccessKey: minioContainer.Password,
		UsePathStyle:    true,
		PublicURL:       "http://" + endpoint + "/" + testBucket,
	}

	s3Client := s3.New(s3.Options{
		Region:       s3Cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, ""),
		BaseEndpoint: aws.String(s3Cfg.Endpoint),
		UsePathStyle: true,
	})
	_, err = s3Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(testBucket)})
	require.NoError(t, err)

	// Initialize infrastructure services
	s3Storage, err := storage.NewS3Storage(s3Cfg)
	require.NoError(t, err)
	imageProcessor := storage.NewImageProcessor()

	// Initialize use cases
	transformSvc := transform.NewService(s3Storage, imageProcessor, 4)
	metadataSvc := metadata.NewService(s3Storage, imageProcessor)
	uploadSvc := upload.NewService(s3Storage, testMaxSize, []string{"image/jpeg", "image/png", "image/webp"})
	signSvc := sign.NewService(s3Storage)
	listSvc := listing.NewService(s3Storage)

	// Initialize handlers
	validator := validation.New()

	// Create router
	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		ImageHandler:     handler.NewImageHandler(transformSvc, metadataSvc, validator),
		UploadHandler:    handler.NewUploadHandler(uploadSvc, testMaxSize),
		SignHandler:      handler.NewSignHandler(signSvc, validator),
		ListHandler:      handler.NewListHandler(listSvc),
		APIKeyMiddleware: middleware.NewAPIKeyMiddleware(testAPIKey),
		Logger:           logger,
		Environment:      "test",
	})

	// Create test server
	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Container: minioContainer,
		S3:        s3Client,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()

	if err := testcontainers.TerminateContainer(app.Container); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) upload(fileName, contentType string, content []byte, headers map[string]string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+"/upload", body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

// putObject stores data directly in the bucket, bypassing the upload route.
func (app *TestApp) putObject(t *testing.T, key, contentType string, data []byte) {
	t.Helper()

	_, err := app.S3.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(testBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	require.NoError(t, err)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func apiKeyHeader() map[string]string {
	return map[string]string{
		middleware.APIKeyHeader: testAPIKey,
	}
}
