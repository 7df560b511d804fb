package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"butter/config"
	"butter/constants"
)

// CheckCompilerVersion fails when the project asks for a newer compiler than
// this one. An empty requirement always passes.
func CheckCompilerVersion(conf *config.ProjectConfig) error {
	required := conf.Compiler.Version
	if required == "" {
		return nil
	}
	if compareVersions(parseVersion(constants.BUTTER_VERSION), parseVersion(required)) < 0 {
		return fmt.Errorf("compiler version %s is less than required version %s", constants.BUTTER_VERSION, required)
	}
	return nil
}

// parseVersion parses a semantic version string into comparable parts
func parseVersion(version string) []int {
	parts := strings.Split(strings.TrimPrefix(version, "v"), ".")
	nums := make([]int, 3) // major.minor.patch

	for i, part := range parts {
		if i >= 3 {
			break
		}
		if num, err := strconv.Atoi(part); err == nil {
			nums[i] = num
		}
	}

	return nums
}

// compareVersions compares two version arrays
// Returns: -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2
func compareVersions(v1, v2 []int) int {
	for i := range 3 {
		if v1[i] < v2[i] {
			return -1
		}
		if v1[i] > v2[i] {
			return 1
		}
	}
	return 0
}
