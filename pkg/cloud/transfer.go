/*
Copyright (C) GRyCAP - I3M - UPV

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cloud

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var errInvalidRemotePath = errors.New("invalid remote path, expected \"BUCKET/KEY\"")

// splitRemotePath splits "bucket/some/key" into bucket and key
func splitRemotePath(remotePath string) (bucket, key string, err error) {
	parts := strings.SplitN(strings.TrimPrefix(remotePath, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errInvalidRemotePath
	}
	return parts[0], parts[1], nil
}

// resolveLocalPath picks the destination file: the key's base name when no
// local path is given, a file inside localPath when it is a directory
func resolveLocalPath(localPath, key string) string {
	if localPath == "" {
		return filepath.Base(key)
	}
	if info, err := os.Stat(localPath); err == nil && info.IsDir() {
		return filepath.Join(localPath, filepath.Base(key))
	}
	return localPath
}

// DownloadObject fetches an S3 object to a local file, with a progress bar
// on interactive terminals
func (c *Client) DownloadObject(remotePath, localPath string, opt *TransferOption) error {
	bucket, key, err := splitRemotePath(remotePath)
	if err != nil {
		return err
	}

	showProgress := resolveShowProgress(opt)
	var total int64
	if showProgress {
		head, err := c.s3api.HeadObject(&s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err == nil && head.ContentLength != nil {
			total = *head.ContentLength
		}
	}

	dest := resolveLocalPath(localPath, key)
	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating \"%s\": %w", dest, err)
	}
	defer file.Close()

	bar := buildProgressBar(newTransferOptions(downloadDescription(key), total, showProgress))
	writer := io.WriterAt(file)
	if bar != nil {
		writer = newProgressWriterAt(file, bar)
	}

	downloader := s3manager.NewDownloaderWithClient(c.s3api)
	if _, err := downloader.Download(writer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("downloading \"%s\": %w", remotePath, err)
	}
	finishProgressBar(bar)

	return nil
}
