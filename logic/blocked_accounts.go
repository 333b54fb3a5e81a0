package logic

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"timeline_cache/shared"
)

// IBlockedAccounts tells which screen names must never be looked up on demand.
type IBlockedAccounts interface {
	IsBlocked(screenName string) (bool, error)
}

type blockedAccounts struct {
	cfg *shared.Config
}

func NewBlockedAccounts(cfg *shared.Config) IBlockedAccounts {
	return &blockedAccounts{cfg}
}

// One screen name per line; blank lines and lines starting with # are ignored.
// Matching is case-insensitive. A missing or unconfigured file blocks nothing.
func (ba *blockedAccounts) IsBlocked(screenName string) (bool, error) {

	if ba.cfg.BlockedAccountsFile == "" {
		return false, nil
	}
	readFile, err := os.Open(ba.cfg.BlockedAccountsFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	screenName = strings.TrimPrefix(strings.ToLower(screenName), "@")
	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if screenName == strings.TrimPrefix(strings.ToLower(line), "@") {
			return true, nil
		}
	}
	return false, fileScanner.Err()
}
