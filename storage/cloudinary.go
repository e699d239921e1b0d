package storage

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Cloudinary configuration via environment variables:
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET,
// CLOUDINARY_FOLDER (optional)

// UploadResult describes a finished Cloudinary upload.
type UploadResult struct {
	URL      string
	PublicID string
	Bytes    int64
}

func cloudinaryCredentials() (cloudName, apiKey, apiSecret, folder string, ok bool) {
	cloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey = os.Getenv("CLOUDINARY_API_KEY")
	apiSecret = os.Getenv("CLOUDINARY_API_SECRET")
	folder = os.Getenv("CLOUDINARY_FOLDER")
	ok = cloudName != "" && apiKey != "" && apiSecret != ""
	return
}

func signRequest(publicID, timestamp, apiSecret string) string {
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, apiSecret)
	return fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))
}

// UploadBase64Image uploads a data-URL (or bare base64) image to Cloudinary
// under the given public ID and returns the hosted URL.
func UploadBase64Image(base64ImageSrc string, publicID string) (*UploadResult, error) {
	if base64ImageSrc == "" {
		return nil, fmt.Errorf("empty image payload")
	}

	payload := base64ImageSrc
	if i := strings.Index(base64ImageSrc, ","); i != -1 {
		payload = base64ImageSrc[i+1:]
	}

	cloudName, apiKey, apiSecret, folder, ok := cloudinaryCredentials()
	if !ok {
		return nil, fmt.Errorf("missing Cloudinary credentials")
	}

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", apiKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signRequest(finalPublicID, timestamp, apiSecret))

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("cloudinary upload failed with status %d: %s", res.StatusCode, string(body))
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		PublicID  string `json:"public_id"`
		Bytes     int64  `json:"bytes"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return nil, err
	}
	if cloudRes.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary error: %s", cloudRes.Error.Message)
	}

	urlOut := cloudRes.SecureURL
	if urlOut == "" {
		urlOut = cloudRes.URL
	}
	if urlOut == "" {
		return nil, fmt.Errorf("no URL returned from Cloudinary")
	}

	return &UploadResult{URL: urlOut, PublicID: finalPublicID, Bytes: cloudRes.Bytes}, nil
}

// DeleteImage removes an image from Cloudinary by its public ID.
func DeleteImage(publicID string) error {
	cloudName, apiKey, apiSecret, _, ok := cloudinaryCredentials()
	if !ok {
		return fmt.Errorf("missing Cloudinary credentials")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Add("public_id", publicID)
	form.Add("api_key", apiKey)
	form.Add("timestamp", timestamp)
	form.Add("signature", signRequest(publicID, timestamp, apiSecret))

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/destroy"
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != 200 {
		return fmt.Errorf("cloudinary destroy failed with status %d: %s", res.StatusCode, string(body))
	}

	var destroyRes struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &destroyRes); err != nil {
		return err
	}
	// "not found" is fine: the asset is already gone
	if destroyRes.Result != "ok" && destroyRes.Result != "not found" {
		return fmt.Errorf("cloudinary destroy result: %s", destroyRes.Result)
	}
	return nil
}
