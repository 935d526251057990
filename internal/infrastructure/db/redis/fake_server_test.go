package redis

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeServer speaks enough RESP2 for SET NX with expiry and DEL.
type fakeServer struct {
	ln   net.Listener
	mu   sync.Mutex
	keys map[string]time.Time // key -> expiry, zero means none
}

func newFakeClient(t *testing.T) (*redis.Client, *fakeServer) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &fakeServer{ln: ln, keys: map[string]time.Time{}}
	go s.serve()

	client := redis.NewClient(&redis.Options{
		Addr:            ln.Addr().String(),
		Protocol:        2,
		DisableIdentity: true,
		MaxRetries:      -1,
	})
	t.Cleanup(func() {
		_ = client.Close()
		_ = ln.Close()
	})
	return client, s
}

func (s *fakeServer) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.keys[key]
	return ok && (exp.IsZero() || time.Now().Before(exp))
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, s.exec(args)); err != nil {
			return
		}
	}
}

func (s *fakeServer) exec(args []string) string {
	if len(args) == 0 {
		return "-ERR empty command\r\n"
	}
	switch strings.ToUpper(args[0]) {
	case "PING":
		return "+PONG\r\n"
	case "SET":
		return s.set(args[1:])
	case "DEL":
		s.mu.Lock()
		defer s.mu.Unlock()
		n := 0
		for _, k := range args[1:] {
			if _, ok := s.keys[k]; ok {
				delete(s.keys, k)
				n++
			}
		}
		return fmt.Sprintf(":%d\r\n", n)
	}
	return "-ERR unknown command '" + args[0] + "'\r\n"
}

func (s *fakeServer) set(args []string) string {
	if len(args) < 2 {
		return "-ERR wrong number of arguments for 'set' command\r\n"
	}
	key := args[0]
	var nx bool
	var exp time.Time
	for i := 2; i < len(args); i++ {
		switch strings.ToUpper(args[i]) {
		case "NX":
			nx = true
		case "EX", "PX":
			if i+1 >= len(args) {
				return "-ERR syntax error\r\n"
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return "-ERR value is not an integer or out of range\r\n"
			}
			unit := time.Second
			if strings.EqualFold(args[i], "PX") {
				unit = time.Millisecond
			}
			exp = time.Now().Add(time.Duration(n) * unit)
			i++
		}
	}
	if nx && s.has(key) {
		return "$-1\r\n"
	}
	s.mu.Lock()
	s.keys[key] = exp
	s.mu.Unlock()
	return "+OK\r\n"
}

func readCommand(r *bufio.Reader) ([]string, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return strings.Fields(line), nil
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return nil, err
	}
	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		head, err := readLine(r)
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimPrefix(head, "$"))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
