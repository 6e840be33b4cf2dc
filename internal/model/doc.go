package model

// Package model defines domain data structures used across the app: conversion
// requests, session download records, file properties and the typed failure
// taxonomy. Structures are plain values so the UI can bind them directly.
