package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
)

type redisCredentialPersistence struct {
	RedisRepository contracts.RedisRepository
	Key             string
}

// NewRedisCredentialPersistence stores the credential under key with no
// expiry.
func NewRedisCredentialPersistence(redisRepository contracts.RedisRepository, key string) contracts.CredentialPersistence {
	return &redisCredentialPersistence{
		RedisRepository: redisRepository,
		Key:             key,
	}
}

func (p *redisCredentialPersistence) Load(ctx context.Context) (string, error) {
	data, err := p.RedisRepository.Get(ctx, p.Key)
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", nil
	}
	var credential string
	err = json.Unmarshal([]byte(data), &credential)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return credential, nil
}

func (p *redisCredentialPersistence) Save(ctx context.Context, credential string) error {
	return p.RedisRepository.Set(ctx, p.Key, credential, 0)
}

func (p *redisCredentialPersistence) Delete(ctx context.Context) error {
	return p.RedisRepository.Delete(ctx, p.Key)
}

type fileCredentialPersistence struct {
	mu   *sync.Mutex
	Path string
	Key  string
}

// fileLocks serializes every persistence sharing one file, whatever key it
// writes.
var fileLocks sync.Map

func fileLock(path string) *sync.Mutex {
	lock, _ := fileLocks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// NewFileCredentialPersistence keeps the credential in a JSON object file,
// under key, readable only by the current user.
func NewFileCredentialPersistence(path, key string) contracts.CredentialPersistence {
	return &fileCredentialPersistence{
		mu:   fileLock(path),
		Path: path,
		Key:  key,
	}
}

func (p *fileCredentialPersistence) Load(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.read()
	if err != nil {
		return "", err
	}
	return values[p.Key], nil
}

func (p *fileCredentialPersistence) Save(ctx context.Context, credential string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.read()
	if err != nil {
		return err
	}
	values[p.Key] = credential
	return p.write(values)
}

func (p *fileCredentialPersistence) Delete(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.read()
	if err != nil {
		return err
	}
	if _, ok := values[p.Key]; !ok {
		return nil
	}
	delete(values, p.Key)
	return p.write(values)
}

func (p *fileCredentialPersistence) read() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, exceptions.ErrCredentialFile(err, p.Path)
	}
	if len(data) == 0 {
		return values, nil
	}
	err = json.Unmarshal(data, &values)
	if err != nil {
		return nil, exceptions.ErrCredentialFile(err, p.Path)
	}
	return values, nil
}

func (p *fileCredentialPersistence) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	err = os.MkdirAll(filepath.Dir(p.Path), 0o700)
	if err != nil {
		return exceptions.ErrCredentialFile(err, p.Path)
	}
	tmp := p.Path + ".tmp"
	err = os.WriteFile(tmp, data, 0o600)
	if err != nil {
		return exceptions.ErrCredentialFile(err, p.Path)
	}
	err = os.Rename(tmp, p.Path)
	if err != nil {
		return exceptions.ErrCredentialFile(err, p.Path)
	}
	return nil
}

type memoryCredentialPersistence struct {
	mu         sync.Mutex
	credential string
}

// NewMemoryCredentialPersistence keeps the credential for the life of the
// process only.
func NewMemoryCredentialPersistence() contracts.CredentialPersistence {
	return &memoryCredentialPersistence{}
}

func (p *memoryCredentialPersistence) Load(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.credential, nil
}

func (p *memoryCredentialPersistence) Save(ctx context.Context, credential string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.credential = credential
	return nil
}

func (p *memoryCredentialPersistence) Delete(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.credential = ""
	return nil
}
