// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a comparison engine address in format [host]:[port]
//	-l control endpoint listen address in format [host]:[port]
//	-snapshot snapshot file used instead of an engine
//	-d settings database DSN
//	-c/-config json file path with configs
//	-s session name for persisted view state
//	-b builder variant (hierarchical, flat, compressed)
//	-m comparison mode (both, incoming, outgoing, conflicting)
//	-request-timeout engine request timeout (e.g., "10s")
//	-poll-interval engine poll interval (e.g., "5s")
//	-dispatch-delay label dispatch delay (e.g., "150ms")
//	-busy-dispatch-delay label dispatch delay while busy state changes
//	-queue-size serializer queue bound
func ParseFlags() *StructuredConfig {
	var sourceAddress NetAddress
	var serverAddress NetAddress
	var snapshotFile string
	var databaseDSN string
	var jsonConfigPath string
	var session string
	var builder string
	var mode string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var dispatchDelay time.Duration
	var busyDispatchDelay time.Duration
	var queueSize int

	flag.Var(&sourceAddress, "a", "Comparison engine address host:port")
	flag.Var(&serverAddress, "l", "Control endpoint listen address host:port")
	flag.StringVar(&snapshotFile, "snapshot", "", "Snapshot file path")
	flag.StringVar(&databaseDSN, "d", "", "Settings database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&session, "s", "", "Session name")
	flag.StringVar(&builder, "b", "", "Builder variant")
	flag.StringVar(&mode, "m", "", "Comparison mode")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g., 5s)")
	flag.DurationVar(&dispatchDelay, "dispatch-delay", 0, "Label dispatch delay (e.g., 150ms)")
	flag.DurationVar(&busyDispatchDelay, "busy-dispatch-delay", 0, "Label dispatch delay while busy (e.g., 20ms)")
	flag.IntVar(&queueSize, "queue-size", 0, "Serializer queue size, 0 is unbounded")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Session: session,
		},
		Tree: Tree{
			Builder: builder,
			Mode:    mode,
		},
		Serializer: Serializer{
			DispatchDelay:     dispatchDelay,
			BusyDispatchDelay: busyDispatchDelay,
			QueueSize:         queueSize,
		},
		Source: Source{
			Address:        sourceAddress.String(),
			RequestTimeout: requestTimeout,
			PollInterval:   pollInterval,
			SnapshotFile:   snapshotFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Address: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
