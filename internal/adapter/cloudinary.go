package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pmikheev/go-chat-server/internal/config"
	"github.com/pmikheev/go-chat-server/internal/logger"
)

// cloudinaryUploadURL is the signed-upload endpoint template; the single
// placeholder is the account's cloud name.
const cloudinaryUploadURL = "https://api.cloudinary.com/v1_1/%s/image/upload"

const defaultUploadTimeout = 15 * time.Second

// cloudinaryImageHost implements [ImageHost] over Cloudinary's signed upload
// HTTP API. Requests are authenticated with a SHA-1 signature over the
// sorted upload parameters plus the API secret, as the API requires.
type cloudinaryImageHost struct {
	client *resty.Client

	apiKey    string
	apiSecret string
	folder    string

	logger *logger.Logger
}

// uploadResponse is the subset of Cloudinary's upload response the
// application consumes.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryImageHost constructs an [ImageHost] posting to the account
// identified by cfg.CloudName.
func NewCloudinaryImageHost(cfg config.Cloudinary, logger *logger.Logger) ImageHost {
	logger.Debug().Str("cloud_name", cfg.CloudName).Msg("creating cloudinary image host")

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultUploadTimeout
	}

	client := resty.New().
		SetBaseURL(fmt.Sprintf(cloudinaryUploadURL, cfg.CloudName)).
		SetTimeout(timeout)

	return &cloudinaryImageHost{
		client:    client,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.UploadFolder,
		logger:    logger,
	}
}

// Upload implements [ImageHost]. It POSTs the inline image payload together
// with the signed parameter set and returns the durable HTTPS URL Cloudinary
// assigned to the asset.
func (c *cloudinaryImageHost) Upload(ctx context.Context, file string) (string, error) {
	log := logger.FromContext(ctx)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	signedParams := map[string]string{
		"timestamp": timestamp,
	}
	if c.folder != "" {
		signedParams["folder"] = c.folder
	}

	formData := map[string]string{
		"file":      file,
		"api_key":   c.apiKey,
		"signature": c.sign(signedParams),
	}
	for k, v := range signedParams {
		formData[k] = v
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(formData).
		Post("")
	if err != nil {
		log.Err(err).Msg("image upload request failed")
		return "", fmt.Errorf("upload request: %w", err)
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(resp.Body(), &uploaded); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("image host returned unparsable body")
		return "", fmt.Errorf("%w: unparsable response", ErrUploadFailed)
	}

	if resp.IsError() || uploaded.SecureURL == "" {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("error", uploaded.Error.Message).
			Msg("image host rejected upload")
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}

	return uploaded.SecureURL, nil
}

// sign computes the SHA-1 request signature Cloudinary expects: the signed
// parameters serialized as "k=v" pairs in alphabetical key order, joined
// with "&", with the API secret appended.
func (c *cloudinaryImageHost) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
