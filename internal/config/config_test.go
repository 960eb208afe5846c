package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_DEFAULT_REGION",
		"S3_BUCKET", "S3_PREFIX", "PHYSIQ_BANK", "PHYSIQ_DB", "PHYSIQ_LOG",
		"PHYSIQ_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AWSRegion != "us-west-2" {
		t.Errorf("AWSRegion = %q", cfg.AWSRegion)
	}
	if cfg.S3Bucket != "images-questionbank" {
		t.Errorf("S3Bucket = %q", cfg.S3Bucket)
	}
	if cfg.S3Prefix != "Diagrams/Physics/images/" {
		t.Errorf("S3Prefix = %q", cfg.S3Prefix)
	}
	if cfg.BankPath != "questions.json" {
		t.Errorf("BankPath = %q", cfg.BankPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.HasAWSCredentials() {
		t.Error("no credentials set, HasAWSCredentials should be false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIATEST")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")
	t.Setenv("S3_BUCKET", "my-bucket")
	t.Setenv("S3_PREFIX", "other/prefix/")
	t.Setenv("PHYSIQ_BANK", "/tmp/bank.json")

	cfg := Load()
	if !cfg.HasAWSCredentials() {
		t.Error("credentials set, HasAWSCredentials should be true")
	}
	if cfg.AWSRegion != "eu-central-1" || cfg.S3Bucket != "my-bucket" {
		t.Errorf("overrides lost: %+v", cfg)
	}
	if cfg.S3Prefix != "other/prefix/" || cfg.BankPath != "/tmp/bank.json" {
		t.Errorf("overrides lost: %+v", cfg)
	}
}
