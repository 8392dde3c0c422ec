/*
 * MIT License
 *
 * Copyright (c) 2026 ClipShare-Desktop Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package scanner

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/clipshare-desktop/clipshare/transport"
)

// InfoName is the literal reply every ClipShare peer sends back to a
// discovery probe; any datagram not matching it is ignored.
const InfoName = "ClipShareDesktop"

const (
	probeMessage   = "in"
	maxConcurrency = 16
	maxRepliesEach = 256
	pollInterval   = 50 * time.Millisecond
	firstReplyWait = 2 * time.Second
	stragglerWait  = 200 * time.Millisecond
)

// Scan probes udpPort on every non-loopback IPv4 interface concurrently
// and returns the sorted, de-duplicated set of peer addresses that
// answered with InfoName, excluding this host's own interface addresses.
func Scan(ctx context.Context, udpPort uint16) ([]net.IP, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, ErrorNoInterfaces.Error(err)
	}

	targets := usableBroadcasts(ifaces)
	if len(targets) == 0 {
		return nil, ErrorNoInterfaces.Error(nil)
	}

	local := localAddresses(ifaces)

	ctx, cancel := context.WithTimeout(ctx, firstReplyWait+stragglerWait+time.Second)
	defer cancel()

	sem := semaphore.NewWeighted(maxConcurrency)

	var (
		mu      sync.Mutex
		found   []net.IP
		wg      sync.WaitGroup
		firstAt = make(chan struct{}, 1)
	)

	for _, bc := range targets {
		if err = sem.Acquire(ctx, 1); err != nil {
			break
		}

		wg.Add(1)
		go func(broadcast net.IP) {
			defer wg.Done()
			defer sem.Release(1)

			probeInterface(ctx, broadcast, udpPort, &mu, &found, firstAt)
		}(bc)
	}

	go waitAndCancel(ctx, cancel, &mu, &found, firstAt)

	wg.Wait()

	return postProcess(found, local), nil
}

func waitAndCancel(ctx context.Context, cancel context.CancelFunc, mu *sync.Mutex, found *[]net.IP, firstAt chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	deadline := time.Now().Add(firstReplyWait)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-firstAt:
			time.Sleep(stragglerWait)
			cancel()
			return
		case <-ticker.C:
			mu.Lock()
			n := len(*found)
			mu.Unlock()
			if n > 0 {
				time.Sleep(stragglerWait)
				cancel()
				return
			}
		}
	}

	cancel()
}

func probeInterface(ctx context.Context, broadcast net.IP, udpPort uint16, mu *sync.Mutex, found *[]net.IP, firstAt chan struct{}) {
	local := &net.UDPAddr{IP: net.IPv4zero, Port: 0}
	conn, err := net.ListenUDP("udp4", local)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	if err = transport.EnableBroadcast(conn); err != nil {
		return
	}

	dst := &net.UDPAddr{IP: broadcast, Port: int(udpPort)}
	if _, err = conn.WriteTo([]byte(probeMessage), dst); err != nil {
		return
	}

	buf := make([]byte, 256)

	for i := 0; i < maxRepliesEach; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_ = conn.SetReadDeadline(time.Now().Add(pollInterval))

		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			continue
		}

		if string(buf[:n]) != InfoName {
			continue
		}

		mu.Lock()
		*found = append(*found, from.IP)
		mu.Unlock()

		select {
		case firstAt <- struct{}{}:
		default:
		}
	}
}

func usableBroadcasts(ifaces []net.Interface) []net.IP {
	var out []net.IP

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}

			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}

			broadcast := make(net.IP, net.IPv4len)
			for i := range ip4 {
				broadcast[i] = ip4[i] | ^ipNet.Mask[i]
			}

			out = append(out, broadcast)
		}
	}

	return out
}

func localAddresses(ifaces []net.Interface) map[string]struct{} {
	set := make(map[string]struct{})

	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				set[ip4.String()] = struct{}{}
			}
		}
	}

	return set
}

func postProcess(found []net.IP, local map[string]struct{}) []net.IP {
	seen := make(map[string]struct{}, len(found))
	out := make([]net.IP, 0, len(found))

	for _, ip := range found {
		s := ip.String()
		if _, isLocal := local[s]; isLocal {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, ip)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})

	return out
}
