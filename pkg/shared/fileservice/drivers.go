package fileservice

// Cloud buckets selectable through FILE_FOLDER_URL: azblob://, gs:// and s3://.
import (
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)
