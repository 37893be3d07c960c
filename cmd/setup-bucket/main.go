package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Madhavladani/adeptjs64/pkg/config"
)

// logoPrefix ต้องตรงกับ path ที่ LogoUploader ใช้
const logoPrefix = "logos"

// publicReadPolicy เปิดอ่านแบบ public เฉพาะ logos/*
func publicReadPolicy(bucket string) ([]byte, error) {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicReadLogos",
				"Effect":    "Allow",
				"Principal": map[string][]string{"AWS": {"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/%s/*", bucket, logoPrefix)},
			},
		},
	}
	return json.MarshalIndent(policy, "", "  ")
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s3 := cfg.Storage.S3

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("  Logo Bucket Setup")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("\nEndpoint: %s\n", s3.Endpoint)
	fmt.Printf("Bucket: %s\n", s3.Bucket)
	fmt.Printf("Region: %s\n", s3.Region)

	client, err := minio.New(s3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3.AccessKey, s3.SecretKey, ""),
		Secure: s3.UseSSL,
		Region: s3.Region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		fmt.Printf("\nBucket '%s' not found, creating...\n", s3.Bucket)
		if err := client.MakeBucket(ctx, s3.Bucket, minio.MakeBucketOptions{Region: s3.Region}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
	}
	fmt.Printf("\n✓ Bucket '%s' ready\n", s3.Bucket)

	policyJSON, err := publicReadPolicy(s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to build policy: %v", err)
	}

	fmt.Println("\n--- Setting Bucket Policy ---")
	fmt.Println(string(policyJSON))

	if err := client.SetBucketPolicy(ctx, s3.Bucket, string(policyJSON)); err != nil {
		// R2 ไม่รองรับ bucket policy ต้องเปิด public access จาก dashboard
		log.Printf("⚠️  Warning: Failed to set policy: %v", err)
	} else {
		fmt.Println("\n✓ Bucket policy set successfully")
	}

	fmt.Println("\n--- Testing Basic Operations ---")

	fmt.Print("Testing PutObject... ")
	testKey := logoPrefix + "/.setup-check.svg"
	testContent := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	_, err = client.PutObject(ctx, s3.Bucket, testKey,
		bytes.NewReader(testContent), int64(len(testContent)),
		minio.PutObjectOptions{ContentType: "image/svg+xml"})
	if err != nil {
		fmt.Printf("❌ Failed: %v\n", err)
	} else {
		fmt.Println("✓ OK")

		fmt.Print("Testing RemoveObject... ")
		if err := client.RemoveObject(ctx, s3.Bucket, testKey, minio.RemoveObjectOptions{}); err != nil {
			fmt.Printf("❌ Failed: %v\n", err)
		} else {
			fmt.Println("✓ OK")
		}
	}

	if s3.PublicURL == "" {
		fmt.Println("\n⚠️  S3_PUBLIC_URL ยังไม่ได้ตั้ง, logo URL จะชี้ไปที่ endpoint ตรงๆ")
	}

	fmt.Println("\n═══════════════════════════════════════════════════════════════")
	fmt.Println("  Setup Complete!")
	fmt.Println("═══════════════════════════════════════════════════════════════")
}
